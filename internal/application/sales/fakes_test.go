package sales_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. fakeCatalog replica el contrato de AdjustStock: decremento
// condicional atómico con piso en cero, bajo mutex (equivalente en memoria del
// UPDATE ... WHERE stock + delta >= 0).
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalog struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeCatalog(products ...*entity.Product) *fakeCatalog {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		cp := *p
		m[p.ID] = &cp
	}
	return &fakeCatalog{products: m}
}

func (f *fakeCatalog) stockOf(id string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok {
		return p.Stock
	}
	return -1
}

func (f *fakeCatalog) snapshotStocks() map[string]int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap := make(map[string]int64, len(f.products))
	for id, p := range f.products {
		snap[id] = p.Stock
	}
	return snap
}

func (f *fakeCatalog) restoreStocks(snap map[string]int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, stock := range snap {
		if p, ok := f.products[id]; ok {
			p.Stock = stock
		}
	}
}

func (f *fakeCatalog) AdjustStock(_ context.Context, id string, delta int64) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, &domain.ProductNotFoundError{ProductID: id}
	}
	if p.Stock+delta < 0 {
		return nil, &domain.InsufficientStockError{ProductName: p.Name}
	}
	p.Stock += delta
	cp := *p
	return &cp, nil
}

func (f *fakeCatalog) Create(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeCatalog) GetByID(_ context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCatalog) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) Search(_ context.Context, name, category string) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Product
	for _, p := range f.products {
		if name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCatalog) ListCategories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeCatalog) Update(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeCatalog) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

var _ repository.ProductRepository = (*fakeCatalog)(nil)

// ── fakeSaleStore: write-once, bill_no único ─────────────────────────────────

type fakeSaleStore struct {
	mu    sync.Mutex
	sales []*entity.Sale
}

func newFakeSaleStore() *fakeSaleStore { return &fakeSaleStore{} }

func (f *fakeSaleStore) snapshot() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sales)
}

func (f *fakeSaleStore) restore(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n <= len(f.sales) {
		f.sales = f.sales[:n]
	}
}

func (f *fakeSaleStore) Create(_ context.Context, sale *entity.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sales {
		if s.BillNo == sale.BillNo {
			return domain.ErrDuplicateBill
		}
	}
	cp := *sale
	cp.Lines = append([]entity.SaleLine(nil), sale.Lines...)
	f.sales = append(f.sales, &cp)
	return nil
}

func (f *fakeSaleStore) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleStore) GetByBillNo(_ context.Context, billNo string) (*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sales {
		if s.BillNo == billNo {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleStore) List(_ context.Context, filters repository.SaleFilters) ([]*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Sale
	for _, s := range f.sales {
		if filters.SalesUser != "" && s.SalesUser != filters.SalesUser {
			continue
		}
		if filters.BillNo != "" && s.BillNo != filters.BillNo {
			continue
		}
		if filters.VehicleNo != "" && s.VehicleNo != filters.VehicleNo {
			continue
		}
		if filters.From != nil && s.Date.Before(*filters.From) {
			continue
		}
		if filters.To != nil && s.Date.After(*filters.To) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

var _ repository.SaleRepository = (*fakeSaleStore)(nil)

// ── fakeTxRunner: serializa y revierte como una tx SERIALIZABLE en memoria ───

type fakeTxRunner struct {
	mu      sync.Mutex
	catalog *fakeCatalog
	sales   *fakeSaleStore
}

func newFakeTxRunner(catalog *fakeCatalog, sales *fakeSaleStore) *fakeTxRunner {
	return &fakeTxRunner{catalog: catalog, sales: sales}
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stocks := r.catalog.snapshotStocks()
	saleCount := r.sales.snapshot()
	if err := fn(r.catalog, r.sales); err != nil {
		r.catalog.restoreStocks(stocks)
		r.sales.restore(saleCount)
		return err
	}
	return nil
}
