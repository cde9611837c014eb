package repository

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/labtrack/labtrack/internal/component/domain"
)

func TestMemoryRepositoryCreatePrepends(t *testing.T) {
	repo := NewMemoryComponentRepository()

	first := &domain.Component{ID: uuid.NewString(), Name: "Resistor"}
	second := &domain.Component{ID: uuid.NewString(), Name: "Capacitor"}
	repo.Create(first)
	repo.Create(second)

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 components, got %d", len(all))
	}
	if all[0].Name != "Capacitor" || all[1].Name != "Resistor" {
		t.Errorf("expected newest first, got %q then %q", all[0].Name, all[1].Name)
	}
}

func TestMemoryRepositoryUpdatePreservesPosition(t *testing.T) {
	repo := NewMemoryComponentRepository()

	a := &domain.Component{ID: uuid.NewString(), Name: "A"}
	b := &domain.Component{ID: uuid.NewString(), Name: "B"}
	c := &domain.Component{ID: uuid.NewString(), Name: "C"}
	repo.Create(a)
	repo.Create(b)
	repo.Create(c)

	updated := *b
	updated.Name = "B updated"
	updated.Quantity = 42
	if err := repo.Update(&updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	all, _ := repo.FindAll()
	if all[1].Name != "B updated" || all[1].Quantity != 42 {
		t.Errorf("expected update in place, got %+v", all[1])
	}
	if all[0].Name != "C" || all[2].Name != "A" {
		t.Error("update must not reorder the collection")
	}
}

func TestMemoryRepositoryFindByIDReturnsCopy(t *testing.T) {
	repo := NewMemoryComponentRepository()
	c := &domain.Component{ID: uuid.NewString(), Name: "Sensor", Quantity: 5}
	repo.Create(c)

	got, err := repo.FindByID(c.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	got.Quantity = 999

	stored, _ := repo.FindByID(c.ID)
	if stored.Quantity != 5 {
		t.Errorf("mutating a returned component must not affect the store, got %d", stored.Quantity)
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryComponentRepository()
	c := &domain.Component{ID: uuid.NewString(), Name: "Diode"}
	repo.Create(c)

	if err := repo.Delete(c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	repo := NewMemoryComponentRepository()

	if _, err := repo.FindByID(uuid.NewString()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(&domain.Component{ID: uuid.NewString()}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
