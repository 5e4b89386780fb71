// Package iocache is for durable storage of reports and runs.
package iocache

import (
	"sync"

	"github.com/huangsam/gitpulse/internal/contract"
)

// StoreManager manages the report cache and run tracking stores.
type StoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	reports      contract.ReportStore
	runs         contract.RunStore
}

var _ contract.CacheManager = &StoreManager{} // Compile-time check

// GetReportStore returns the report ReportStore.
func (mgr *StoreManager) GetReportStore() contract.ReportStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.reports
}

// GetRunStore returns the run RunStore.
func (mgr *StoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
