package relay

import (
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// HostStatus is the machine summary reported by /healthz.
type HostStatus struct {
	Hostname      string  `json:"hostname,omitempty"`
	UptimeSeconds uint64  `json:"uptime_seconds"`
	MemUsage      float64 `json:"mem_usage"` // percent 0-100
}

// CollectHostStatus gathers host data with gopsutil. Fields that cannot be
// read on this platform stay zero.
func CollectHostStatus() HostStatus {
	var s HostStatus
	if info, err := host.Info(); err == nil {
		s.Hostname = info.Hostname
		s.UptimeSeconds = info.Uptime
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsage = vm.UsedPercent
	}
	return s
}

// processStart anchors the relay's own uptime.
var processStart = time.Now()
