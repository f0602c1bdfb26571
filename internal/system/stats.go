// Package system reports host resource usage for the dashboard's
// platform status strip.
package system

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats represents host resource statistics
type Stats struct {
	Hostname  string      `json:"hostname"`
	CPU       CPUStats    `json:"cpu"`
	Memory    MemoryStats `json:"memory"`
	Disk      DiskStats   `json:"disk"`
	Timestamp time.Time   `json:"timestamp"`
}

// CPUStats represents CPU usage statistics
type CPUStats struct {
	UsagePercent float64 `json:"usage_percent"`
	Cores        int     `json:"cores"`
}

// MemoryStats represents memory usage statistics
type MemoryStats struct {
	Total        uint64  `json:"total_bytes"`
	Used         uint64  `json:"used_bytes"`
	Free         uint64  `json:"free_bytes"`
	Available    uint64  `json:"available_bytes"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskStats represents disk usage statistics
type DiskStats struct {
	Total        uint64  `json:"total_bytes"`
	Used         uint64  `json:"used_bytes"`
	Free         uint64  `json:"free_bytes"`
	UsagePercent float64 `json:"usage_percent"`
	Path         string  `json:"path"`
}

// Collector collects host statistics
type Collector struct {
	diskPath string
}

// NewCollector creates a collector measuring disk usage at the given path
func NewCollector(diskPath string) *Collector {
	if diskPath == "" {
		diskPath = "/"
	}
	return &Collector{diskPath: diskPath}
}

// GetStats retrieves host statistics. Individual probes that fail are
// logged and reported as zero values rather than failing the whole call.
func (c *Collector) GetStats() (*Stats, error) {
	var cpuStats CPUStats
	var memStats MemoryStats
	var diskStats DiskStats

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		cpuStats = c.getCPUStats()
	}()

	go func() {
		defer wg.Done()
		memStats = c.getMemoryStats()
	}()

	go func() {
		defer wg.Done()
		diskStats = c.getDiskStats(c.diskPath)
	}()

	wg.Wait()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return &Stats{
		Hostname:  hostname,
		CPU:       cpuStats,
		Memory:    memStats,
		Disk:      diskStats,
		Timestamp: time.Now(),
	}, nil
}

func (c *Collector) getCPUStats() CPUStats {
	cores, err := cpu.Counts(true)
	if err != nil {
		slog.Warn("failed to get CPU count", "error", err)
		cores = 1
	}

	// Zero duration returns the percentage since the last call instead
	// of blocking for a sample window.
	percentages, err := cpu.Percent(0, false)
	if err != nil {
		slog.Warn("failed to get CPU usage", "error", err)
		return CPUStats{UsagePercent: 0, Cores: cores}
	}

	usagePercent := 0.0
	if len(percentages) > 0 {
		usagePercent = percentages[0]
	}

	return CPUStats{UsagePercent: usagePercent, Cores: cores}
}

func (c *Collector) getMemoryStats() MemoryStats {
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		slog.Warn("failed to get memory stats", "error", err)
		return MemoryStats{}
	}

	return MemoryStats{
		Total:        vmStat.Total,
		Used:         vmStat.Used,
		Free:         vmStat.Free,
		Available:    vmStat.Available,
		UsagePercent: vmStat.UsedPercent,
	}
}

func (c *Collector) getDiskStats(path string) DiskStats {
	usage, err := disk.Usage(path)
	if err != nil {
		slog.Warn("failed to get disk stats", "path", path, "error", err)
		return DiskStats{Path: path}
	}

	return DiskStats{
		Total:        usage.Total,
		Used:         usage.Used,
		Free:         usage.Free,
		UsagePercent: usage.UsedPercent,
		Path:         path,
	}
}
