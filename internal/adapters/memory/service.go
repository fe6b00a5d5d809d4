// Package memory is an in-process ProductService used for offline runs and
// tests: a seeded catalog and locally minted order ids.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/larekdev/weblarek/internal/domain"
)

type Service struct {
	mu       sync.Mutex
	products []domain.Product
	received []domain.OrderPayload

	// SubmitErr, when set, makes SubmitOrder fail without recording the
	// order. Used to exercise the retry path.
	SubmitErr error
}

// New builds a service over the given catalog.
func New(products []domain.Product) *Service {
	return &Service{products: append([]domain.Product(nil), products...)}
}

// Seeded builds a service with a small demo catalog, priceless item
// included.
func Seeded() *Service {
	price := func(v float64) *float64 { return &v }
	return New([]domain.Product{
		{ID: uuid.NewString(), Title: "+1 час в сутках", Category: domain.CategorySoftSkill, Price: price(750), Image: "/5_Dots.svg", Description: "Если планируете решать задачи в тренажёре, берите два."},
		{ID: uuid.NewString(), Title: "HEX-леденец", Category: domain.CategoryOther, Price: price(1450), Image: "/Shell.svg", Description: "Лизните, чтобы понять, как это работает."},
		{ID: uuid.NewString(), Title: "Мамка-таймер", Category: domain.CategoryButton, Price: nil, Image: "/Asterisk_2.svg", Description: "Будет стоять над душой и не давать прокрастинировать."},
		{ID: uuid.NewString(), Title: "Фреймворк куки судьбы", Category: domain.CategoryAdditional, Price: price(2500), Image: "/Soft_Flower.svg", Description: "Откройте эти куки, чтобы узнать, какой фреймворк вы должны изучить."},
		{ID: uuid.NewString(), Title: "Бэкенд-антистресс", Category: domain.CategoryOther, Price: price(1000), Image: "/mute-cat.svg", Description: "Если планируете решать задачи в тренажёре, берите два."},
	})
}

func (s *Service) FetchCatalog(context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...), nil
}

func (s *Service) FetchProduct(_ context.Context, id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

// SubmitOrder accepts an order with at least one purchasable item and
// echoes its total back with a fresh id.
func (s *Service) SubmitOrder(_ context.Context, order domain.OrderPayload) (domain.OrderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SubmitErr != nil {
		return domain.OrderResult{}, s.SubmitErr
	}
	if len(order.Items) == 0 {
		return domain.OrderResult{}, domain.ErrEmptyOrder
	}
	s.received = append(s.received, order)
	return domain.OrderResult{ID: uuid.NewString(), Total: order.Total}, nil
}

// Received returns the orders accepted so far.
func (s *Service) Received() []domain.OrderPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.OrderPayload(nil), s.received...)
}
