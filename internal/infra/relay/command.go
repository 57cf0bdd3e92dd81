package relay

import (
	"context"
	"os/exec"
	"path/filepath"
	"strconv"

	"masjidcast/config"
	"masjidcast/internal/domain/constants"
)

// transcodeJob describes one HLS transcode.
type transcodeJob struct {
	Name      string
	PlayURL   string
	OutputDir string // broadcast-scoped directory on the host
}

// CommandFunc builds the transcoder process for a job.
type CommandFunc func(ctx context.Context, job transcodeJob) *exec.Cmd

// newCommandFunc returns the builder for the configured exec mode.
func newCommandFunc(cfg *config.RelayConfig) CommandFunc {
	if cfg.ExecMode == constants.RelayExecModeContainer {
		return func(ctx context.Context, job transcodeJob) *exec.Cmd {
			root := filepath.Dir(job.OutputDir)
			if abs, err := filepath.Abs(root); err == nil {
				root = abs
			}
			dir := "/out/" + filepath.Base(job.OutputDir)

			args := []string{
				"run", "--rm",
				"--name", job.Name,
				"-v", root + ":/out",
				cfg.ContainerImage,
			}
			args = append(args, ffmpegArgs(cfg, job.PlayURL, dir)...)

			return exec.CommandContext(ctx, cfg.ContainerRuntime, args...)
		}
	}

	return func(ctx context.Context, job transcodeJob) *exec.Cmd {
		return exec.CommandContext(ctx, cfg.FFmpegPath, ffmpegArgs(cfg, job.PlayURL, job.OutputDir)...)
	}
}

// ffmpegArgs reads an audio stream and writes a rolling HLS playlist into dir.
func ffmpegArgs(cfg *config.RelayConfig, playURL, dir string) []string {
	return []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "warning",
		"-i", playURL,
		"-vn",
		"-c:a", "aac",
		"-b:a", strconv.Itoa(cfg.BitrateKbps) + "k",
		"-f", "hls",
		"-hls_time", strconv.Itoa(cfg.SegmentSeconds),
		"-hls_list_size", strconv.Itoa(cfg.PlaylistSize),
		"-hls_flags", "delete_segments+omit_endlist",
		"-hls_segment_filename", dir + "/index%d.ts",
		dir + "/index.m3u8",
	}
}
