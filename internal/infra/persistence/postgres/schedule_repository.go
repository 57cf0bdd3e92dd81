package postgres

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// scheduleTemplateRepository implements the repository.ScheduleTemplateRepository interface.
type scheduleTemplateRepository struct {
	db *gorm.DB
}

// NewScheduleTemplateRepository is the constructor for scheduleTemplateRepository.
func NewScheduleTemplateRepository(db *gorm.DB) repository.ScheduleTemplateRepository {
	return &scheduleTemplateRepository{
		db: db,
	}
}

// FindAllTemplates retrieves every template.
func (repo *scheduleTemplateRepository) FindAllTemplates(ctx context.Context) ([]*entity.ScheduleTemplate, error) {
	var templateModels []*model.ScheduleTemplateModel

	if err := repo.db.WithContext(ctx).
		Order("masjid_id, prayer_name").
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedule templates")
	}

	return toTemplateDomains(templateModels), nil
}

// FindTemplatesByMasjid retrieves the templates of a masjid.
func (repo *scheduleTemplateRepository) FindTemplatesByMasjid(ctx context.Context, masjidID uuid.UUID) ([]*entity.ScheduleTemplate, error) {
	var templateModels []*model.ScheduleTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("masjid_id = ?", masjidID).
		Order("prayer_name").
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedule templates by masjid")
	}

	return toTemplateDomains(templateModels), nil
}

// UpsertTemplate inserts or updates the template keyed by (masjid, prayer).
func (repo *scheduleTemplateRepository) UpsertTemplate(ctx context.Context, template *entity.ScheduleTemplate) error {
	templateM := fromTemplateDomain(template)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "masjid_id"}, {Name: "prayer_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"adhan_time", "iqamah_time", "khutbah_time", "is_juma", "updated_at"}),
		}).
		Create(templateM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMasjidNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert schedule template")
	}

	template.ID = templateM.ID
	template.CreatedAt = templateM.CreatedAt
	template.UpdatedAt = templateM.UpdatedAt

	return nil
}

// scheduleOccurrenceRepository implements the repository.ScheduleOccurrenceRepository interface.
type scheduleOccurrenceRepository struct {
	db *gorm.DB
}

// NewScheduleOccurrenceRepository is the constructor for scheduleOccurrenceRepository.
func NewScheduleOccurrenceRepository(db *gorm.DB) repository.ScheduleOccurrenceRepository {
	return &scheduleOccurrenceRepository{
		db: db,
	}
}

// ExistsOccurrence reports whether (masjid, date, prayer) already has an occurrence.
func (repo *scheduleOccurrenceRepository) ExistsOccurrence(ctx context.Context, masjidID uuid.UUID, date string, prayer entity.PrayerName) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ScheduleOccurrenceModel{}).
		Where("masjid_id = ? AND date = ? AND prayer_name = ?", masjidID, date, prayer.String()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check schedule occurrence")
	}

	return count > 0, nil
}

// CreateOccurrence persists a new occurrence.
func (repo *scheduleOccurrenceRepository) CreateOccurrence(ctx context.Context, occurrence *entity.ScheduleOccurrence) error {
	occurrenceM := fromOccurrenceDomain(occurrence)

	if err := repo.db.WithContext(ctx).Create(occurrenceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOccurrence
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create schedule occurrence")
	}

	occurrence.ID = occurrenceM.ID
	occurrence.CreatedAt = occurrenceM.CreatedAt
	occurrence.UpdatedAt = occurrenceM.UpdatedAt

	return nil
}

// FindUpcomingOccurrences retrieves occurrences with adhan in [from, to) of approved, active masjids.
func (repo *scheduleOccurrenceRepository) FindUpcomingOccurrences(ctx context.Context, from, to time.Time) ([]*entity.ScheduleOccurrence, error) {
	var occurrenceModels []*model.ScheduleOccurrenceModel

	if err := repo.db.WithContext(ctx).
		Table("schedule_occurrences AS so").
		Select("so.*").
		Joins("JOIN masjids m ON m.id = so.masjid_id").
		Where("so.adhan_at >= ? AND so.adhan_at < ?", from, to).
		Where("m.status = ? AND m.is_active = ?", entity.MasjidStatusApproved, true).
		Order("so.adhan_at").
		Find(&occurrenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming occurrences")
	}

	return toOccurrenceDomains(occurrenceModels), nil
}

// FindOccurrencesByMasjidAndDate retrieves a masjid's occurrences on a local date.
func (repo *scheduleOccurrenceRepository) FindOccurrencesByMasjidAndDate(ctx context.Context, masjidID uuid.UUID, date string) ([]*entity.ScheduleOccurrence, error) {
	var occurrenceModels []*model.ScheduleOccurrenceModel

	if err := repo.db.WithContext(ctx).
		Where("masjid_id = ? AND date = ?", masjidID, date).
		Order("adhan_at").
		Find(&occurrenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find occurrences by masjid and date")
	}

	return toOccurrenceDomains(occurrenceModels), nil
}

// --- Mapper Functions ---

func toTemplateDomains(models []*model.ScheduleTemplateModel) []*entity.ScheduleTemplate {
	templates := make([]*entity.ScheduleTemplate, 0, len(models))
	for _, templateM := range models {
		templates = append(templates, toTemplateDomain(templateM))
	}

	return templates
}

func toTemplateDomain(data *model.ScheduleTemplateModel) *entity.ScheduleTemplate {
	if data == nil {
		return nil
	}

	return &entity.ScheduleTemplate{
		ID:          data.ID,
		MasjidID:    data.MasjidID,
		PrayerName:  entity.PrayerName(data.PrayerName),
		AdhanTime:   data.AdhanTime,
		IqamahTime:  derefString(data.IqamahTime),
		KhutbahTime: derefString(data.KhutbahTime),
		IsJuma:      data.IsJuma,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTemplateDomain(data *entity.ScheduleTemplate) *model.ScheduleTemplateModel {
	if data == nil {
		return nil
	}

	return &model.ScheduleTemplateModel{
		ID:          data.ID,
		MasjidID:    data.MasjidID,
		PrayerName:  data.PrayerName.String(),
		AdhanTime:   data.AdhanTime,
		IqamahTime:  nilIfEmpty(data.IqamahTime),
		KhutbahTime: nilIfEmpty(data.KhutbahTime),
		IsJuma:      data.IsJuma,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toOccurrenceDomains(models []*model.ScheduleOccurrenceModel) []*entity.ScheduleOccurrence {
	occurrences := make([]*entity.ScheduleOccurrence, 0, len(models))
	for _, occurrenceM := range models {
		occurrences = append(occurrences, toOccurrenceDomain(occurrenceM))
	}

	return occurrences
}

func toOccurrenceDomain(data *model.ScheduleOccurrenceModel) *entity.ScheduleOccurrence {
	if data == nil {
		return nil
	}

	return &entity.ScheduleOccurrence{
		ID:         data.ID,
		MasjidID:   data.MasjidID,
		Date:       normalizeDate(data.Date),
		PrayerName: entity.PrayerName(data.PrayerName),
		AdhanAt:    data.AdhanAt.UTC(),
		IqamahAt:   utcPtr(data.IqamahAt),
		KhutbahAt:  utcPtr(data.KhutbahAt),
		IsJuma:     data.IsJuma,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromOccurrenceDomain(data *entity.ScheduleOccurrence) *model.ScheduleOccurrenceModel {
	if data == nil {
		return nil
	}

	return &model.ScheduleOccurrenceModel{
		ID:         data.ID,
		MasjidID:   data.MasjidID,
		Date:       data.Date,
		PrayerName: data.PrayerName.String(),
		AdhanAt:    data.AdhanAt,
		IqamahAt:   data.IqamahAt,
		KhutbahAt:  data.KhutbahAt,
		IsJuma:     data.IsJuma,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
