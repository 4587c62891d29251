package selector

import (
	"time"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/state"
)

type InstrumentSelector struct {
	instruments state.InstrumentState
}

func (s InstrumentSelector) GetInstruments() []models.Instrument {
	return s.instruments.Data
}

func (s InstrumentSelector) GetInstrumentsMeta() *models.InstrumentMeta {
	return copyOf(s.instruments.Meta)
}

// GetValidVaultAccessToken returns the cached vault token if it is still
// valid at now, or ""
func (s InstrumentSelector) GetValidVaultAccessToken(now time.Time) string {
	meta := s.instruments.Meta
	if meta == nil || meta.VaultAccessToken == "" {
		return ""
	}
	if meta.VaultAccessExpiry <= now.UnixMilli() {
		return ""
	}
	return meta.VaultAccessToken
}

func (s InstrumentSelector) GetLoadError() error {
	return s.instruments.Errors.LoadError
}

// GetDeleteError returns the delete error of id, or of any instrument when empty
func (s InstrumentSelector) GetDeleteError(id string) error {
	if id != "" && s.instruments.Errors.FailedInstrument != id {
		return nil
	}
	return s.instruments.Errors.DeleteError
}

func (s InstrumentSelector) IsLoading() bool {
	return s.instruments.Statuses.IsLoading
}

// IsDeleting reports whether id, or any instrument when empty, is being deleted
func (s InstrumentSelector) IsDeleting(id string) bool {
	if id != "" && s.instruments.Statuses.DeletingInstrument != id {
		return false
	}
	return s.instruments.Statuses.IsDeleting
}
