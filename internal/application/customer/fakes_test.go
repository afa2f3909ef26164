package customer_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/client-management/internal/application/customer"
	"github.com/jhoicas/client-management/internal/domain/entity"
	"github.com/jhoicas/client-management/internal/domain/repository"
)

// memStore almacén en memoria que imita el comportamiento de los repositorios PostgreSQL.
type memStore struct {
	mu            sync.Mutex
	customers     map[int64]*entity.Customer
	contacts      map[int64]*entity.Contact
	nextCustomer  int64
	nextContact   int64
	listCalls     int
	failCustomers error
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[int64]*entity.Customer{},
		contacts:  map[int64]*entity.Contact{},
	}
}

// seed inserta directamente un cliente con su contacto (ids consecutivos).
func (s *memStore) seed(name, phone string, status entity.CustomerStatus) *entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextContact++
	s.nextCustomer++
	co := &entity.Contact{ID: s.nextContact, Phone: phone}
	cu := &entity.Customer{ID: s.nextCustomer, Name: name, Status: status, ContactID: co.ID}
	s.contacts[co.ID] = co
	s.customers[cu.ID] = cu
	return s.load(cu.ID)
}

// load copia el cliente con su contacto para que el llamador no comparta punteros con el almacén.
func (s *memStore) load(id int64) *entity.Customer {
	cu, ok := s.customers[id]
	if !ok {
		return nil
	}
	out := *cu
	co := *s.contacts[cu.ContactID]
	out.Contact = &co
	return &out
}

type memCustomerRepo struct{ s *memStore }

var _ repository.CustomerRepository = memCustomerRepo{}

func (r memCustomerRepo) List(_ context.Context, q repository.CustomerQuery) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.listCalls++
	var all []*entity.Customer
	for id := range r.s.customers {
		c := r.s.load(id)
		if q.Name != "" && !strings.Contains(c.Name, q.Name) {
			continue
		}
		if q.Phone != "" && !strings.Contains(c.Contact.Phone, q.Phone) {
			continue
		}
		all = append(all, c)
	}
	less := func(a, b *entity.Customer) bool { return a.ID < b.ID }
	switch strings.ToLower(q.SortBy) {
	case repository.SortByName:
		less = func(a, b *entity.Customer) bool { return a.Name < b.Name }
	case repository.SortByPhone:
		less = func(a, b *entity.Customer) bool { return a.Contact.Phone < b.Contact.Phone }
	}
	sort.SliceStable(all, func(i, j int) bool {
		if q.Ascending {
			return less(all[i], all[j])
		}
		return less(all[j], all[i])
	})
	off := q.Offset()
	if off >= len(all) {
		return []*entity.Customer{}, nil
	}
	end := len(all)
	if q.PageSize < end-off {
		end = off + q.PageSize
	}
	return all[off:end], nil
}

func (r memCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.load(id), nil
}

func (r memCustomerRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Customer, error) {
	return r.GetByID(ctx, id)
}

func (r memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failCustomers != nil {
		return r.s.failCustomers
	}
	r.s.nextCustomer++
	c.ID = r.s.nextCustomer
	stored := *c
	stored.Contact = nil
	r.s.customers[c.ID] = &stored
	return nil
}

func (r memCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *c
	stored.Contact = nil
	r.s.customers[c.ID] = &stored
	return nil
}

func (r memCustomerRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cu, ok := r.s.customers[id]
	if !ok {
		return false, nil
	}
	delete(r.s.contacts, cu.ContactID)
	delete(r.s.customers, id)
	return true, nil
}

type memContactRepo struct{ s *memStore }

var _ repository.ContactRepository = memContactRepo{}

func (r memContactRepo) Create(_ context.Context, c *entity.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextContact++
	c.ID = r.s.nextContact
	stored := *c
	r.s.contacts[c.ID] = &stored
	return nil
}

func (r memContactRepo) Update(_ context.Context, c *entity.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *c
	r.s.contacts[c.ID] = &stored
	return nil
}

// memTxRunner simula la transacción: si fn falla, restaura el estado anterior.
type memTxRunner struct{ s *memStore }

var _ customer.TxRunner = memTxRunner{}

func (t memTxRunner) Run(_ context.Context, fn func(repository.CustomerRepository, repository.ContactRepository) error) error {
	t.s.mu.Lock()
	customers := make(map[int64]*entity.Customer, len(t.s.customers))
	for k, v := range t.s.customers {
		customers[k] = v
	}
	contacts := make(map[int64]*entity.Contact, len(t.s.contacts))
	for k, v := range t.s.contacts {
		contacts[k] = v
	}
	t.s.mu.Unlock()

	if err := fn(memCustomerRepo{t.s}, memContactRepo{t.s}); err != nil {
		t.s.mu.Lock()
		t.s.customers, t.s.contacts = customers, contacts
		t.s.mu.Unlock()
		return err
	}
	return nil
}

// mapCache caché sin expiración para aislar el comportamiento de la clave.
type mapCache struct {
	entries map[string][]*entity.Customer
	sets    int
}

var _ customer.ListCache = (*mapCache)(nil)

func newMapCache() *mapCache { return &mapCache{entries: map[string][]*entity.Customer{}} }

func (c *mapCache) Get(key string) ([]*entity.Customer, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *mapCache) Set(key string, v []*entity.Customer) {
	c.sets++
	c.entries[key] = v
}
