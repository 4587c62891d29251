package reducer

import (
	"checkout-sdk/internal/models"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
)

// Instruments reduces the vaulted instrument slice
func Instruments(s state.StoreState, sig signal.Signal) state.StoreState {
	slice := s.Instruments

	switch sig.Type {
	case signal.LoadInstrumentsRequested:
		slice.Statuses.IsLoading = true
		slice.Errors.LoadError = nil
	case signal.LoadInstrumentsFailed:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = sig.Err()
	case signal.LoadInstrumentsSucceeded:
		slice.Statuses.IsLoading = false
		slice.Errors.LoadError = nil
		if instruments, ok := sig.Payload.([]models.Instrument); ok {
			slice.Data = instruments
		}
		slice.Meta = instrumentMeta(slice.Meta, sig)

	case signal.DeleteInstrumentRequested:
		slice.Statuses.IsDeleting = true
		slice.Statuses.DeletingInstrument, _ = sig.Payload.(string)
		slice.Errors.DeleteError = nil
		slice.Errors.FailedInstrument = ""
	case signal.DeleteInstrumentFailed:
		slice.Statuses.IsDeleting = false
		slice.Errors.FailedInstrument = slice.Statuses.DeletingInstrument
		slice.Statuses.DeletingInstrument = ""
		slice.Errors.DeleteError = sig.Err()
	case signal.DeleteInstrumentSucceeded:
		slice.Statuses.IsDeleting = false
		slice.Statuses.DeletingInstrument = ""
		slice.Errors.DeleteError = nil
		if id, ok := sig.Payload.(string); ok {
			slice.Data = removeInstrument(slice.Data, id)
		}
		slice.Meta = instrumentMeta(slice.Meta, sig)
	}

	s.Instruments = slice
	return s
}

func instrumentMeta(current *models.InstrumentMeta, sig signal.Signal) *models.InstrumentMeta {
	if meta, ok := sig.Meta.(*models.InstrumentMeta); ok && meta != nil {
		return meta
	}
	return current
}

func removeInstrument(instruments []models.Instrument, id string) []models.Instrument {
	remaining := make([]models.Instrument, 0, len(instruments))
	for _, instrument := range instruments {
		if instrument.ID != id {
			remaining = append(remaining, instrument)
		}
	}
	return remaining
}
