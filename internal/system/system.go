package system

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open file limit; writing a frame sequence
// with many workers keeps a file per worker open.
func InitResourceLimits(log zerolog.Logger) {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Warn().Err(err).Msg("cannot read open file limit")
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Warn().Err(err).Msg("cannot raise open file limit")
	} else {
		log.Debug().Uint64("limit", uint64(rLimit.Cur)).Msg("open file limit raised")
	}
}

// FindLatest returns the most recently modified file in dir whose name ends
// in one of exts (case-insensitive).
func FindLatest(dir string, exts ...string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExt(f.Name(), exts) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no %s files in %s", strings.Join(exts, "/"), dir)
	}
	return latestFile, nil
}

// FindLatestSpec picks the newest YAML spec in dir.
func FindLatestSpec(dir string) (string, error) {
	return FindLatest(dir, ".yaml", ".yml")
}

func hasExt(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// DefaultWorkers is one worker per physical core, or per logical CPU when
// the core count is unavailable.
func DefaultWorkers() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// WorkersFor caps requested so that one frame buffer per worker fits in half
// of the available memory. requested <= 0 means DefaultWorkers.
func WorkersFor(requested int, frameBytes uint64) int {
	if requested <= 0 {
		requested = DefaultWorkers()
	}
	vm, err := mem.VirtualMemory()
	if err != nil || frameBytes == 0 {
		return requested
	}
	return capWorkers(requested, vm.Available/2, frameBytes)
}

func capWorkers(requested int, budget, frameBytes uint64) int {
	fit := budget / frameBytes
	if fit < 1 {
		return 1
	}
	if uint64(requested) > fit {
		return int(fit)
	}
	return requested
}
