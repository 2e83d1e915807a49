package cache

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
)

// CacheStats reports cache occupancy together with memory usage of the
// hosting process and system.
type CacheStats struct {
	TotalEntries         int     `json:"total_entries"`
	ActiveEntries        int     `json:"active_entries"`
	ExpiredEntries       int     `json:"expired_entries"`
	AllocMB              int64   `json:"alloc_mb"`
	SystemMemUsedMB      int64   `json:"system_mem_used_mb"`
	SystemMemTotalMB     int64   `json:"system_mem_total_mb"`
	SystemMemUsedPercent float64 `json:"system_mem_used_percent"`
}

// GetStats returns current cache statistics
func (mc *MemoryCache) GetStats() CacheStats {
	now := time.Now()

	mc.mu.RLock()
	total := len(mc.entries)
	expired := 0
	for _, entry := range mc.entries {
		if entry.isExpired(now) {
			expired++
		}
	}
	mc.mu.RUnlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	stats := CacheStats{
		TotalEntries:   total,
		ActiveEntries:  total - expired,
		ExpiredEntries: expired,
		AllocMB:        int64(m.Alloc / 1024 / 1024),
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		stats.SystemMemUsedMB = int64(vmStat.Used / 1024 / 1024)
		stats.SystemMemTotalMB = int64(vmStat.Total / 1024 / 1024)
		stats.SystemMemUsedPercent = vmStat.UsedPercent
	}

	return stats
}
