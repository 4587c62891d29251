package action

import (
	"context"
	"fmt"
	"time"

	"checkout-sdk/internal/models"
	"checkout-sdk/internal/sdkerr"
	"checkout-sdk/internal/selector"
	"checkout-sdk/internal/sender"
	"checkout-sdk/internal/signal"
	"checkout-sdk/internal/state"
	"checkout-sdk/internal/store"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

// InstrumentActionCreator reads and deletes the shopper's vaulted instruments
type InstrumentActionCreator struct {
	sender *sender.InstrumentRequestSender
	now    func() time.Time
	logger *zap.Logger
}

// NewInstrumentActionCreator creates a new instrument action creator
func NewInstrumentActionCreator(s *sender.InstrumentRequestSender) *InstrumentActionCreator {
	return &InstrumentActionCreator{
		sender: s,
		now:    time.Now,
		logger: util.GetLogger(),
	}
}

type instrumentSession struct {
	storeID   string
	shopperID int64
	meta      *models.InstrumentMeta
}

// LoadInstruments lists vaulted instruments, fetching a new vault access
// token first when the stored one is missing or expired
func (c *InstrumentActionCreator) LoadInstruments(opts sender.Options) store.Action {
	return instrument(c.logger, "LoadInstruments", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		session, err := c.session(st.GetState(), "load instruments")
		if err != nil {
			return err
		}

		emit(signal.New(signal.LoadInstrumentsRequested, nil))

		meta, err := c.accessToken(ctx, session.meta, opts)
		if err != nil {
			return fail(emit, signal.LoadInstrumentsFailed, err)
		}

		resp, err := c.sender.LoadInstruments(ctx, session.storeID, session.shopperID, meta.VaultAccessToken, opts)
		if err != nil {
			return fail(emit, signal.LoadInstrumentsFailed, err)
		}

		emit(signal.NewWithMeta(signal.LoadInstrumentsSucceeded, resp.Body.VaultedInstruments, meta))
		return nil
	})
}

// DeleteInstrument removes instrumentID from the vault
func (c *InstrumentActionCreator) DeleteInstrument(instrumentID string, opts sender.Options) store.Action {
	return instrument(c.logger, "DeleteInstrument", func(ctx context.Context, st store.ReadableStore, emit store.Emitter) error {
		session, err := c.session(st.GetState(), "delete instrument")
		if err != nil {
			return err
		}
		if instrumentID == "" {
			return sdkerr.NewMissingDataError("delete instrument", "instrumentId")
		}

		emit(signal.New(signal.DeleteInstrumentRequested, instrumentID))

		meta, err := c.accessToken(ctx, session.meta, opts)
		if err != nil {
			return fail(emit, signal.DeleteInstrumentFailed, err)
		}

		if _, err := c.sender.DeleteInstrument(ctx, session.storeID, session.shopperID, meta.VaultAccessToken, instrumentID, opts); err != nil {
			return fail(emit, signal.DeleteInstrumentFailed, err)
		}

		emit(signal.NewWithMeta(signal.DeleteInstrumentSucceeded, instrumentID, meta))
		return nil
	})
}

func (c *InstrumentActionCreator) session(s state.StoreState, operation string) (instrumentSession, error) {
	sel := selector.New(s)
	config := sel.Config.GetStoreConfig()
	cart := sel.Cart.GetCart()

	if config == nil || config.StoreProfile.StoreID == "" || cart == nil || cart.CustomerID == 0 {
		return instrumentSession{}, sdkerr.NewMissingDataError(operation, "storeId", "customerId")
	}

	return instrumentSession{
		storeID:   config.StoreProfile.StoreID,
		shopperID: cart.CustomerID,
		meta:      sel.Instruments.GetInstrumentsMeta(),
	}, nil
}

// accessToken returns current when it is still valid, otherwise a new token
func (c *InstrumentActionCreator) accessToken(ctx context.Context, current *models.InstrumentMeta, opts sender.Options) (*models.InstrumentMeta, error) {
	if current != nil && current.VaultAccessToken != "" && current.VaultAccessExpiry > c.now().UnixMilli() {
		return current, nil
	}

	c.logger.Debug("Refreshing vault access token")

	resp, err := c.sender.GetVaultAccessToken(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get vault access token: %w", err)
	}

	return &models.InstrumentMeta{
		VaultAccessToken:  resp.Body.ID,
		VaultAccessExpiry: resp.Body.ExpiresAt,
	}, nil
}
