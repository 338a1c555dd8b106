package transfer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/application/transfer"
	"github.com/jcastrom/tienda-api/internal/domain"
	"github.com/jcastrom/tienda-api/internal/domain/entity"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
	"github.com/jcastrom/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memState estado compartido de los fakes. El runner de transacciones trabaja
// sobre un clon y solo lo publica en Commit, igual que la BD real.
type memState struct {
	users     map[int64]*entity.User
	suppliers map[int64]*entity.Supplier
	products  map[int64]*entity.Product
	stocks    map[int64]*entity.Stock // por productID
	transfers []entity.Transfer

	// failAdjustPointID fuerza el fallo de AdjustPoint sobre ese usuario,
	// para probar que el débito previo se descarta.
	failAdjustPointID int64
}

func newMemState() *memState {
	return &memState{
		users:     map[int64]*entity.User{},
		suppliers: map[int64]*entity.Supplier{},
		products:  map[int64]*entity.Product{},
		stocks:    map[int64]*entity.Stock{},
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for id, u := range s.users {
		cp := *u
		c.users[id] = &cp
	}
	for id, sp := range s.suppliers {
		cp := *sp
		c.suppliers[id] = &cp
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, st := range s.stocks {
		cp := *st
		c.stocks[id] = &cp
	}
	c.transfers = append(c.transfers, s.transfers...)
	c.failAdjustPointID = s.failAdjustPointID
	return c
}

type memUsers struct{ s *memState }

func (r memUsers) Create(u *entity.User) error {
	u.ID = int64(len(r.s.users) + 1)
	r.s.users[u.ID] = u
	return nil
}
func (r memUsers) GetByID(id int64) (*entity.User, error) { return r.s.users[id], nil }
func (r memUsers) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r memUsers) Update(u *entity.User) error {
	r.s.users[u.ID] = u
	return nil
}
func (r memUsers) List(listing.Options) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.users {
		out = append(out, u)
	}
	return out, nil
}
func (r memUsers) Delete(id int64) error {
	delete(r.s.users, id)
	return nil
}
func (r memUsers) GetByIDForUpdate(id int64) (*entity.User, error) { return r.s.users[id], nil }
func (r memUsers) AdjustPoint(id int64, delta int64) (*entity.User, error) {
	if r.s.failAdjustPointID == id {
		return nil, errors.New("adjust point: store unavailable")
	}
	u := r.s.users[id]
	if u == nil {
		return nil, nil
	}
	u.Point += delta
	return u, nil
}

type memSuppliers struct{ s *memState }

func (r memSuppliers) GetByID(id int64) (*entity.Supplier, error) { return r.s.suppliers[id], nil }
func (r memSuppliers) List(listing.Options) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, sp := range r.s.suppliers {
		out = append(out, sp)
	}
	return out, nil
}
func (r memSuppliers) GetByIDForUpdate(id int64) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}
func (r memSuppliers) AdjustStock(id int64, delta int64) (*entity.Supplier, error) {
	sp := r.s.suppliers[id]
	if sp == nil {
		return nil, nil
	}
	sp.Stock += delta
	return sp, nil
}

type memProducts struct{ s *memState }

func (r memProducts) Create(p *entity.Product) error {
	p.ID = int64(len(r.s.products) + 1)
	r.s.products[p.ID] = p
	return nil
}
func (r memProducts) GetByID(id int64) (*entity.Product, error) { return r.s.products[id], nil }
func (r memProducts) List(listing.Options) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

type memStocks struct{ s *memState }

func (r memStocks) Create(st *entity.Stock) error {
	st.ID = int64(len(r.s.stocks) + 1)
	r.s.stocks[st.ProductID] = st
	return nil
}
func (r memStocks) GetByProductID(productID int64) (*entity.Stock, error) {
	return r.s.stocks[productID], nil
}
func (r memStocks) List(listing.Options) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, st := range r.s.stocks {
		out = append(out, st)
	}
	return out, nil
}
func (r memStocks) GetByProductIDForUpdate(productID int64) (*entity.Stock, error) {
	return r.s.stocks[productID], nil
}
func (r memStocks) AdjustQuantity(productID int64, delta int64) (*entity.Stock, error) {
	st := r.s.stocks[productID]
	if st == nil {
		return nil, nil
	}
	st.Quantity += delta
	return st, nil
}

type memTransfers struct{ s *memState }

func (r memTransfers) Create(t *entity.Transfer) error {
	t.ID = int64(len(r.s.transfers) + 1)
	r.s.transfers = append(r.s.transfers, *t)
	return nil
}

type memOrders struct{ s *memState }

func (r memOrders) Create(*entity.Order) error                      { return nil }
func (r memOrders) GetByID(int64) (*entity.Order, error)            { return nil, nil }
func (r memOrders) List(listing.Options) ([]*entity.Order, error)   { return nil, nil }
func (r memOrders) Delete(int64) error                              { return nil }
func (r memOrders) DeleteByUserID(int64) (int64, error)             { return 0, nil }

func txFor(s *memState) repository.Tx {
	return repository.Tx{
		Users:     memUsers{s},
		Suppliers: memSuppliers{s},
		Products:  memProducts{s},
		Stocks:    memStocks{s},
		Orders:    memOrders{s},
		Transfers: memTransfers{s},
	}
}

// stagingRunner ejecuta fn sobre un clon del estado y lo publica solo si fn
// retorna nil: commit todo-o-nada como la BD real.
type stagingRunner struct{ s *memState }

func (r stagingRunner) Run(_ context.Context, fn func(tx repository.Tx) error) error {
	staged := r.s.clone()
	if err := fn(txFor(staged)); err != nil {
		return err
	}
	*r.s = *staged
	return nil
}

func newUseCase(s *memState) *transfer.UseCase {
	return transfer.NewUseCase(
		stagingRunner{s}, memUsers{s}, memSuppliers{s}, memProducts{s}, memStocks{s},
	)
}

func seedUser(s *memState, id int64, name string, point int64) {
	s.users[id] = &entity.User{
		ID: id, Name: name, Email: name + "@mail.com", Role: entity.RoleCustomer,
		Point: point, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// TransferPoints
// ──────────────────────────────────────────────────────────────────────────────

func TestTransferPoints_MueveElSaldoYConservaElTotal(t *testing.T) {
	s := newMemState()
	seedUser(s, 1, "alice", 500)
	seedUser(s, 2, "bob", 50)
	uc := newUseCase(s)

	out, err := uc.TransferPoints(context.Background(), dto.TransferPointsRequest{
		Amount: "100", SenderID: "1", ReceiverID: "2",
	})
	require.NoError(t, err)

	assert.Equal(t, "Point has been transferred to bob", out.Message)
	assert.Equal(t, int64(400), out.Sender.Point)
	assert.Equal(t, int64(150), out.Receiver.Point)
	assert.Equal(t, int64(400), s.users[1].Point)
	assert.Equal(t, int64(150), s.users[2].Point)
	// El total del sistema no cambia
	assert.Equal(t, int64(550), s.users[1].Point+s.users[2].Point)

	require.Len(t, s.transfers, 1, "debe quedar un registro de auditoría")
	audit := s.transfers[0]
	assert.Equal(t, entity.TransferKindPoint, audit.Kind)
	assert.Equal(t, int64(1), audit.SourceID)
	assert.Equal(t, int64(2), audit.DestinationID)
	assert.Equal(t, int64(100), audit.Amount)
	assert.NotEmpty(t, audit.TransactionID)
}

func TestTransferPoints_SaldoInsuficiente_NoMutaNada(t *testing.T) {
	s := newMemState()
	seedUser(s, 1, "alice", 50)
	seedUser(s, 2, "bob", 0)
	uc := newUseCase(s)

	_, err := uc.TransferPoints(context.Background(), dto.TransferPointsRequest{
		Amount: "100", SenderID: "1", ReceiverID: "2",
	})
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 400, derr.Status)
	assert.Equal(t, "Point is not sufficient", derr.Message)

	assert.Equal(t, int64(50), s.users[1].Point, "el emisor no debe cambiar")
	assert.Equal(t, int64(0), s.users[2].Point, "el receptor no debe cambiar")
	assert.Empty(t, s.transfers, "no debe haber auditoría")
}

func TestTransferPoints_MontoNegativo_Rechazado(t *testing.T) {
	s := newMemState()
	seedUser(s, 1, "alice", 500)
	seedUser(s, 2, "bob", 50)
	uc := newUseCase(s)

	_, err := uc.TransferPoints(context.Background(), dto.TransferPointsRequest{
		Amount: "-5", SenderID: "1", ReceiverID: "2",
	})
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Amount must be greater than 0", derr.Message)
	assert.Equal(t, int64(500), s.users[1].Point)
}

func TestTransferPoints_MontoNoNumerico_Rechazado(t *testing.T) {
	s := newMemState()
	seedUser(s, 1, "alice", 500)
	seedUser(s, 2, "bob", 50)
	uc := newUseCase(s)

	_, err := uc.TransferPoints(context.Background(), dto.TransferPointsRequest{
		Amount: "abc", SenderID: "1", ReceiverID: "2",
	})
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Amount must be numeric", derr.Message)
}

func TestTransferPoints_ReceptorInexistente_404(t *testing.T) {
	s := newMemState()
	seedUser(s, 1, "alice", 500)
	uc := newUseCase(s)

	_, err := uc.TransferPoints(context.Background(), dto.TransferPointsRequest{
		Amount: "100", SenderID: "1", ReceiverID: "99",
	})
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 404, derr.Status)
	assert.Equal(t, "Receiver with ID: 99 is not found", derr.Message)
}

func TestTransferPoints_FalloMidTx_DescartaElDebito(t *testing.T) {
	s := newMemState()
	seedUser(s, 1, "alice", 500)
	seedUser(s, 2, "bob", 50)
	s.failAdjustPointID = 2 // el crédito al receptor falla dentro de la tx
	uc := newUseCase(s)

	_, err := uc.TransferPoints(context.Background(), dto.TransferPointsRequest{
		Amount: "100", SenderID: "1", ReceiverID: "2",
	})
	require.Error(t, err)

	assert.Equal(t, int64(500), s.users[1].Point, "el débito debe revertirse")
	assert.Equal(t, int64(50), s.users[2].Point)
	assert.Empty(t, s.transfers)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReplenishStock
// ──────────────────────────────────────────────────────────────────────────────

func seedSupplierProductStock(s *memState) {
	now := time.Now()
	s.suppliers[1] = &entity.Supplier{ID: 1, Name: "acme", Stock: 100, CreatedAt: now, UpdatedAt: now}
	s.products[7] = &entity.Product{
		ID: 7, SupplierID: 1, Name: "teclado", Price: decimal.NewFromInt(900),
		CreatedAt: now, UpdatedAt: now,
	}
	s.stocks[7] = &entity.Stock{ID: 1, ProductID: 7, Quantity: 15, UpdatedAt: now}
}

func TestReplenishStock_MueveInventarioDelProveedorAlProducto(t *testing.T) {
	s := newMemState()
	seedSupplierProductStock(s)
	uc := newUseCase(s)

	out, err := uc.ReplenishStock(context.Background(), dto.ReplenishStockRequest{
		Amount: "40", SupplierID: "1", ProductID: "7",
	})
	require.NoError(t, err)

	assert.Equal(t, "teclado stock has been updated", out.Message)
	assert.Equal(t, int64(60), out.Supplier.Stock)
	assert.Equal(t, int64(55), out.Stock.Quantity)
	assert.Equal(t, int64(60), s.suppliers[1].Stock)
	assert.Equal(t, int64(55), s.stocks[7].Quantity)

	require.Len(t, s.transfers, 1)
	assert.Equal(t, entity.TransferKindStock, s.transfers[0].Kind)
}

func TestReplenishStock_InventarioInsuficiente_NoMutaNada(t *testing.T) {
	s := newMemState()
	seedSupplierProductStock(s)
	uc := newUseCase(s)

	_, err := uc.ReplenishStock(context.Background(), dto.ReplenishStockRequest{
		Amount: "500", SupplierID: "1", ProductID: "7",
	})
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "Supplier stock is not sufficient", derr.Message)
	assert.Equal(t, int64(100), s.suppliers[1].Stock)
	assert.Equal(t, int64(15), s.stocks[7].Quantity)
}

func TestReplenishStock_SinRegistroStock_404(t *testing.T) {
	s := newMemState()
	seedSupplierProductStock(s)
	delete(s.stocks, 7)
	uc := newUseCase(s)

	_, err := uc.ReplenishStock(context.Background(), dto.ReplenishStockRequest{
		Amount: "40", SupplierID: "1", ProductID: "7",
	})
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 404, derr.Status)
	assert.Equal(t, "Stock with ID: 7 is not found", derr.Message)
}
