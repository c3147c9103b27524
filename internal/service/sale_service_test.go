package service

import (
	"errors"
	"testing"
	"time"

	"bizhub-backend/internal/models"
)

type fakeProductRepo struct {
	products map[uint]*models.Product
	updated  []models.Product
}

func (r *fakeProductRepo) Create(product *models.Product) error { return nil }

func (r *fakeProductRepo) Update(product *models.Product) error {
	r.updated = append(r.updated, *product)
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error { return nil }

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *fakeProductRepo) GetByCompany(companyID uint) ([]models.Product, error) {
	return nil, nil
}

type fakeServiceRepo struct {
	services map[uint]*models.Service
}

func (r *fakeServiceRepo) Create(service *models.Service) error { return nil }
func (r *fakeServiceRepo) Update(service *models.Service) error { return nil }
func (r *fakeServiceRepo) Delete(id uint) error                 { return nil }

func (r *fakeServiceRepo) GetByID(id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *fakeServiceRepo) GetByCompany(companyID uint) ([]models.Service, error) {
	return nil, nil
}

type fakeSaleRepo struct {
	created []*models.SaleOrder
	orders  map[uint]*models.SaleOrder
	since   []models.SaleOrder
	total   float64
}

func (r *fakeSaleRepo) Create(order *models.SaleOrder) error {
	r.created = append(r.created, order)
	return nil
}

func (r *fakeSaleRepo) Delete(id uint) error { return nil }

func (r *fakeSaleRepo) GetByID(id uint) (*models.SaleOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return o, nil
}

func (r *fakeSaleRepo) GetByCompany(companyID uint) ([]models.SaleOrder, error) {
	return nil, nil
}

func (r *fakeSaleRepo) GetByCompanySince(companyID uint, since time.Time) ([]models.SaleOrder, error) {
	return r.since, nil
}

func (r *fakeSaleRepo) TotalByCompanySince(companyID uint, since time.Time) (float64, error) {
	return r.total, nil
}

func newSaleFixture(products map[uint]*models.Product) (*SaleService, *fakeSaleRepo, *fakeProductRepo) {
	productRepo := &fakeProductRepo{products: products}
	serviceRepo := &fakeServiceRepo{services: map[uint]*models.Service{}}
	saleRepo := &fakeSaleRepo{orders: map[uint]*models.SaleOrder{}}
	catalog := NewCatalogService(productRepo, serviceRepo, nil)
	return NewSaleService(saleRepo, catalog), saleRepo, productRepo
}

func TestCreateSaleDenormalisesCatalogLines(t *testing.T) {
	productID := uint(1)
	svc, saleRepo, productRepo := newSaleFixture(map[uint]*models.Product{
		productID: {ID: productID, CompanyID: 7, Name: "Café molido", Price: 3.5, Stock: 10},
	})

	order, err := svc.Create(7, CreateSaleRequest{
		Items: []SaleItemInput{
			{ProductID: &productID, Name: "ignored", Quantity: 2, UnitPrice: 99},
			{Name: "Delivery", Quantity: 1, UnitPrice: 5},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(saleRepo.created) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(saleRepo.created))
	}
	if order.Total != 12 {
		t.Errorf("expected total 12, got %v", order.Total)
	}
	if order.Items[0].Name != "Café molido" || order.Items[0].UnitPrice != 3.5 {
		t.Errorf("catalog line not denormalised: %+v", order.Items[0])
	}
	if order.Items[1].Name != "Delivery" || order.Items[1].UnitPrice != 5 {
		t.Errorf("free-form line altered: %+v", order.Items[1])
	}
	if got := productRepo.products[productID].Stock; got != 8 {
		t.Errorf("expected stock 8 after sale, got %d", got)
	}
}

func TestCreateSaleRejectsInsufficientStock(t *testing.T) {
	productID := uint(1)
	svc, saleRepo, _ := newSaleFixture(map[uint]*models.Product{
		productID: {ID: productID, CompanyID: 7, Name: "Camiseta", Price: 20, Stock: 1},
	})

	_, err := svc.Create(7, CreateSaleRequest{
		Items: []SaleItemInput{{ProductID: &productID, Quantity: 3}},
	})
	if !errors.Is(err, ErrNotEnoughStock) {
		t.Fatalf("expected ErrNotEnoughStock, got %v", err)
	}
	if len(saleRepo.created) != 0 {
		t.Errorf("order must not be persisted when stock is short")
	}
}

func TestCreateSaleRejectsUnnamedFreeFormLine(t *testing.T) {
	svc, _, _ := newSaleFixture(map[uint]*models.Product{})

	_, err := svc.Create(7, CreateSaleRequest{
		Items: []SaleItemInput{{Quantity: 1, UnitPrice: 10}},
	})
	if err == nil {
		t.Fatal("expected error for item without a name")
	}
}

func TestDeleteSaleMissing(t *testing.T) {
	svc, _, _ := newSaleFixture(map[uint]*models.Product{})

	if err := svc.Delete(99); !errors.Is(err, ErrSaleNotFound) {
		t.Fatalf("expected ErrSaleNotFound, got %v", err)
	}
}

func TestSummarySince(t *testing.T) {
	svc, saleRepo, _ := newSaleFixture(map[uint]*models.Product{})
	saleRepo.since = []models.SaleOrder{{ID: 1}, {ID: 2}, {ID: 3}}
	saleRepo.total = 157.5

	summary, err := svc.SummarySince(7, time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("SummarySince returned error: %v", err)
	}
	if summary.Count != 3 {
		t.Errorf("expected count 3, got %d", summary.Count)
	}
	if summary.Total != 157.5 {
		t.Errorf("expected total 157.5, got %v", summary.Total)
	}
}
