package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/DrGermanius/receipt-points/internal/model"
)

type IService interface {
	ProcessReceipt(context.Context, model.ReceiptInput) (string, error)
	GetPoints(context.Context, string) (int64, error)
}

func NewService(store IStore, logger *zap.SugaredLogger) *Service {
	return &Service{Store: store, validate: validator.New(), logger: logger}
}

type Service struct {
	Store    IStore
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

func (s Service) ProcessReceipt(ctx context.Context, i model.ReceiptInput) (string, error) {
	if err := s.validate.Struct(i); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidReceipt, err)
	}

	r, err := newReceipt(i)
	if err != nil {
		return "", err
	}

	return s.Store.Submit(ctx, r), nil
}

func (s Service) GetPoints(ctx context.Context, id string) (int64, error) {
	r, err := s.Store.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	return CalculatePoints(r), nil
}

func newReceipt(i model.ReceiptInput) (model.Receipt, error) {
	date, err := time.Parse(model.DateLayout, i.PurchaseDate)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("%w: purchaseDate: %s", ErrInvalidReceipt, err)
	}

	clock, err := time.Parse(model.TimeLayout, i.PurchaseTime)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("%w: purchaseTime: %s", ErrInvalidReceipt, err)
	}

	total, err := model.ParseMoney(i.Total)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("total: %w", err)
	}

	items := make([]model.Item, 0, len(i.Items))
	for _, it := range i.Items {
		price, err := model.ParseMoney(it.Price)
		if err != nil {
			return model.Receipt{}, fmt.Errorf("item %q: %w", it.ShortDescription, err)
		}
		items = append(items, model.Item{ShortDescription: it.ShortDescription, Price: price})
	}

	return model.Receipt{
		Retailer:     i.Retailer,
		PurchaseDate: date,
		PurchaseTime: clock,
		Items:        items,
		Total:        total,
	}, nil
}
