package service

import (
	"errors"
	"testing"

	"bizhub-backend/internal/models"
)

type fakeCompanyRepo struct {
	updated []*models.Company
}

func (r *fakeCompanyRepo) Create(company *models.Company) error { return nil }

func (r *fakeCompanyRepo) Update(company *models.Company) error {
	r.updated = append(r.updated, company)
	return nil
}

func (r *fakeCompanyRepo) GetByID(id uint) (*models.Company, error) {
	return nil, errors.New("record not found")
}

func (r *fakeCompanyRepo) GetByRIF(rif string) (*models.Company, error) {
	return nil, errors.New("record not found")
}

func (r *fakeCompanyRepo) ExistsByRIF(rif string) (bool, error) { return false, nil }

func TestUpdateCompanyRequiresName(t *testing.T) {
	repo := &fakeCompanyRepo{}
	svc := NewCompanyService(repo, nil)

	if err := svc.Update(&models.Company{ID: 7, Name: "  "}); err == nil {
		t.Fatal("expected error for blank company name")
	}
	if len(repo.updated) != 0 {
		t.Error("company must not be persisted without a name")
	}

	if err := svc.Update(&models.Company{ID: 7, Name: "Panadería La Espiga", RIF: "J-12345678-9"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(repo.updated) != 1 {
		t.Errorf("expected one persisted update, got %d", len(repo.updated))
	}
}
