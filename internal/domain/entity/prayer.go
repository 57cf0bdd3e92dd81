package entity

// PrayerName identifies one of the daily prayers.
type PrayerName string

const (
	PrayerFajr    PrayerName = "fajr"
	PrayerDhuhr   PrayerName = "dhuhr"
	PrayerAsr     PrayerName = "asr"
	PrayerMaghrib PrayerName = "maghrib"
	PrayerIsha    PrayerName = "isha"
	PrayerJumuah  PrayerName = "jumuah"
)

// String returns the string representation of the PrayerName.
func (p PrayerName) String() string {
	return string(p)
}

// IsValid checks if the PrayerName is a known prayer.
func (p PrayerName) IsValid() bool {
	switch p {
	case PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha, PrayerJumuah:
		return true
	default:
		return false
	}
}
