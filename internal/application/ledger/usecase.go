// Package ledger implementa el libro de inventario: bodegas, catálogo de
// productos y log cronológico de movimientos (ingresos, salidas y traslados).
//
// El Ledger es un objeto explícito construido una vez por proceso, con la
// persistencia inyectada detrás del puerto KV. Toda mutación se aplica en
// memoria y se persiste de forma síncrona como snapshot de colección completa;
// el proceso es de un solo actor lógico, sin acceso concurrente.
package ledger

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-ledger/internal/domain"
	"github.com/tu-usuario/almacen-ledger/internal/domain/catalog"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// DefaultWarehouse es la bodega creada automáticamente en el primer arranque.
const DefaultWarehouse = "BODEGA PRINCIPAL"

// Ledger posee el estado del inventario: bodegas, índice global de productos
// (en orden de inserción), log de movimientos y los dos correlativos
// persistidos. Los traslados reutilizan el correlativo de salidas.
type Ledger struct {
	kv  KV
	log zerolog.Logger

	warehouses []*entity.Warehouse
	products   []*entity.Product
	movements  []*entity.Movement

	seqInbound  int64
	seqOutbound int64
}

// New construye el ledger cargando los snapshots persistidos. En el primer uso
// (claves ausentes) parte de colecciones vacías y crea la bodega por defecto.
func New(kv KV, log zerolog.Logger) (*Ledger, error) {
	l := &Ledger{kv: kv, log: log, seqInbound: 1, seqOutbound: 1}
	if err := l.load(); err != nil {
		return nil, err
	}
	if len(l.warehouses) == 0 {
		if _, err := l.AddWarehouse(DefaultWarehouse); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Ledger) load() error {
	if err := l.loadKey(keyWarehouses, &l.warehouses); err != nil {
		return err
	}
	if err := l.loadKey(keyProducts, &l.products); err != nil {
		return err
	}
	if err := l.loadKey(keyMovements, &l.movements); err != nil {
		return err
	}
	if err := l.loadKey(keySeqInbound, &l.seqInbound); err != nil {
		return err
	}
	return l.loadKey(keySeqOutbound, &l.seqOutbound)
}

func (l *Ledger) loadKey(key string, dst any) error {
	raw, ok, err := l.kv.Get(key)
	if err != nil {
		return fmt.Errorf("%w: leer %s: %v", domain.ErrPersistence, key, err)
	}
	if !ok {
		return nil // primer uso: se conserva el valor por defecto
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decodificar %s: %w", key, err)
	}
	return nil
}

// save serializa y escribe el snapshot completo de una colección.
func (l *Ledger) save(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	if err := l.kv.Set(key, b); err != nil {
		return fmt.Errorf("%w: guardar %s: %v", domain.ErrPersistence, key, err)
	}
	return nil
}

// Flush reescribe todos los snapshots. Permite reintentar después de un
// ErrPersistence sin repetir la operación de negocio.
func (l *Ledger) Flush() error {
	if err := l.save(keyWarehouses, l.warehouses); err != nil {
		return err
	}
	if err := l.save(keyProducts, l.products); err != nil {
		return err
	}
	if err := l.save(keyMovements, l.movements); err != nil {
		return err
	}
	if err := l.save(keySeqInbound, l.seqInbound); err != nil {
		return err
	}
	return l.save(keySeqOutbound, l.seqOutbound)
}

// ── Bodegas ───────────────────────────────────────────────────────────────────

// AddWarehouse crea una bodega con nombre normalizado único.
func (l *Ledger) AddWarehouse(name string) (*entity.Warehouse, error) {
	norm := catalog.NormalizeWarehouse(name)
	if norm == "" {
		return nil, domain.ErrInvalidInput
	}
	if l.findWarehouse(norm) != nil {
		return nil, domain.ErrDuplicate
	}
	w := &entity.Warehouse{ID: uuid.New().String(), Name: norm, CreatedAt: time.Now()}
	l.warehouses = append(l.warehouses, w)
	if err := l.save(keyWarehouses, l.warehouses); err != nil {
		return nil, err
	}
	l.log.Info().Str("bodega", norm).Msg("bodega creada")
	return w, nil
}

// Warehouses devuelve las bodegas en orden de creación.
func (l *Ledger) Warehouses() []*entity.Warehouse {
	out := make([]*entity.Warehouse, len(l.warehouses))
	copy(out, l.warehouses)
	return out
}

func (l *Ledger) findWarehouse(norm string) *entity.Warehouse {
	for _, w := range l.warehouses {
		if w.Name == norm {
			return w
		}
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductInput alta de producto (los 14 atributos del catálogo).
type ProductInput struct {
	Code        string
	Name        string
	Description string
	Model       string
	Brand       string
	Material    string
	Color       string
	Family      string
	Value       decimal.Decimal
	Currency    string
	Unit        string
	Location    string
	Stock       int
	Warehouse   string
}

// AddProduct agrega un producto al índice global y a su bodega destino.
// Devuelve ErrDuplicateCode si el código normalizado ya existe en esa bodega;
// en ese caso no queda ningún estado parcial.
func (l *Ledger) AddProduct(in ProductInput) (*entity.Product, error) {
	code := catalog.NormalizeCode(in.Code)
	wh := catalog.NormalizeWarehouse(in.Warehouse)
	if err := catalog.ValidateProduct(code, in.Value, in.Currency, in.Stock); err != nil {
		return nil, err
	}
	if l.findWarehouse(wh) == nil {
		return nil, domain.ErrNotFound
	}
	if l.findProduct(wh, code) != nil {
		return nil, fmt.Errorf("%w: %s en %s", domain.ErrDuplicateCode, code, wh)
	}
	currency := catalog.NormalizeCode(in.Currency)
	if currency == "" {
		currency = catalog.DefaultCurrency
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
		Model:       in.Model,
		Brand:       in.Brand,
		Material:    in.Material,
		Color:       in.Color,
		Family:      in.Family,
		Value:       in.Value,
		Currency:    currency,
		Unit:        in.Unit,
		Location:    in.Location,
		Stock:       in.Stock,
		Warehouse:   wh,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	l.products = append(l.products, p)
	if err := l.save(keyProducts, l.products); err != nil {
		return nil, err
	}
	l.log.Info().Str("codigo", code).Str("bodega", wh).Msg("producto agregado")
	return p, nil
}

// ProductUpdate campos editables de un producto. Stock y código solo mutan
// vía operaciones del ledger; nil deja el campo como está.
type ProductUpdate struct {
	Name        *string
	Description *string
	Model       *string
	Brand       *string
	Material    *string
	Color       *string
	Family      *string
	Value       *decimal.Decimal
	Currency    *string
	Unit        *string
	Location    *string
}

// UpdateProduct edita en sitio los campos descriptivos del producto con ese
// código (primera coincidencia en orden de inserción del índice global).
func (l *Ledger) UpdateProduct(code string, in ProductUpdate) (*entity.Product, error) {
	p := l.findProductGlobal(catalog.NormalizeCode(code))
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Value != nil && in.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Currency != nil && !catalog.ValidCurrency(*in.Currency) {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Model != nil {
		p.Model = *in.Model
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if in.Material != nil {
		p.Material = *in.Material
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.Family != nil {
		p.Family = *in.Family
	}
	if in.Value != nil {
		p.Value = *in.Value
	}
	if in.Currency != nil {
		p.Currency = catalog.NormalizeCode(*in.Currency)
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	p.UpdatedAt = time.Now()
	if err := l.save(keyProducts, l.products); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct elimina el producto con ese código de su bodega y del índice
// global. Devuelve ErrNotFound si el código no existe (señal explícita,
// consistente en toda la API).
func (l *Ledger) DeleteProduct(code string) error {
	norm := catalog.NormalizeCode(code)
	for i, p := range l.products {
		if p.Code == norm {
			l.products = append(l.products[:i], l.products[i+1:]...)
			if err := l.save(keyProducts, l.products); err != nil {
				return err
			}
			l.log.Info().Str("codigo", norm).Str("bodega", p.Warehouse).Msg("producto eliminado")
			return nil
		}
	}
	return domain.ErrNotFound
}

// Products devuelve los productos de una bodega en orden de inserción;
// con warehouse vacío devuelve el índice global completo.
func (l *Ledger) Products(warehouse string) []*entity.Product {
	norm := catalog.NormalizeWarehouse(warehouse)
	out := make([]*entity.Product, 0, len(l.products))
	for _, p := range l.products {
		if norm == "" || p.Warehouse == norm {
			out = append(out, p)
		}
	}
	return out
}

func (l *Ledger) findProduct(warehouse, code string) *entity.Product {
	for _, p := range l.products {
		if p.Warehouse == warehouse && p.Code == code {
			return p
		}
	}
	return nil
}

func (l *Ledger) findProductGlobal(code string) *entity.Product {
	for _, p := range l.products {
		if p.Code == code {
			return p
		}
	}
	return nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// Line identifica una línea de movimiento por código de producto y cantidad.
type Line struct {
	Code     string
	Quantity int
}

// InboundInput lote de ingreso sobre una bodega.
type InboundInput struct {
	Warehouse string
	Detail    string
	Lines     []Line
	User      string
}

// InboundResult resultado de un ingreso: correlativo usado, líneas aplicadas
// y códigos no localizados en la bodega (omitidos, no son error).
type InboundResult struct {
	Seq     int64
	Applied []entity.MovementItem
	Skipped []string
}

// RecordInbound incrementa el stock de cada producto localizado y registra un
// único movimiento INGRESO con todas las líneas del lote, numerado con el
// correlativo de ingresos vigente; el contador avanza después de aplicar.
// Los códigos no localizados se omiten y se devuelven en Skipped.
func (l *Ledger) RecordInbound(in InboundInput) (*InboundResult, error) {
	wh := catalog.NormalizeWarehouse(in.Warehouse)
	if l.findWarehouse(wh) == nil {
		return nil, domain.ErrNotFound
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad debe ser positiva para %s",
				domain.ErrInvalidInput, catalog.NormalizeCode(line.Code))
		}
	}

	res := &InboundResult{}
	for _, line := range in.Lines {
		code := catalog.NormalizeCode(line.Code)
		p := l.findProduct(wh, code)
		if p == nil {
			res.Skipped = append(res.Skipped, code)
			continue
		}
		p.Stock += line.Quantity
		p.UpdatedAt = time.Now()
		res.Applied = append(res.Applied, entity.MovementItem{
			Code:        p.Code,
			Name:        p.Name,
			Description: p.Description,
			Quantity:    line.Quantity,
		})
	}
	if len(res.Applied) == 0 {
		// Nada aplicado: sin movimiento y sin avance de correlativo.
		return res, nil
	}

	res.Seq = l.seqInbound
	mov := entity.NewInbound(uuid.New().String(), res.Seq, time.Now(), in.Detail, res.Applied, in.User)
	l.movements = append(l.movements, mov)
	l.seqInbound++

	if err := l.persistAfterMovement(); err != nil {
		return nil, err
	}
	l.log.Info().Int64("correlativo", res.Seq).Str("bodega", wh).
		Int("lineas", len(res.Applied)).Msg("ingreso registrado")
	return res, nil
}

// OutboundInput lote de salida sobre una bodega, con documento externo común.
type OutboundInput struct {
	Warehouse string
	DocType   string
	DocNumber string
	Reason    string
	Lines     []Line
	User      string
}

// RejectedLine línea de salida rechazada; Reason envuelve ErrInsufficientStock
// o ErrNotFound.
type RejectedLine struct {
	Code   string
	Reason error
}

// OutboundResult resultado de una salida. Seq es 0 si ninguna línea fue aceptada.
type OutboundResult struct {
	Seq      int64
	Accepted []entity.MovementItem
	Rejected []RejectedLine
}

// RecordOutbound descuenta stock línea a línea. Una línea con cantidad mayor al
// stock disponible se rechaza (el stock de ese producto no cambia) y las demás
// proceden de forma independiente. Cada línea aceptada genera su propio
// movimiento SALIDA compartiendo documento, motivo y correlativo; el contador
// de salidas avanza una vez por confirmación, no por línea.
func (l *Ledger) RecordOutbound(in OutboundInput) (*OutboundResult, error) {
	wh := catalog.NormalizeWarehouse(in.Warehouse)
	if l.findWarehouse(wh) == nil {
		return nil, domain.ErrNotFound
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cantidad debe ser positiva para %s",
				domain.ErrInvalidInput, catalog.NormalizeCode(line.Code))
		}
	}

	res := &OutboundResult{}
	doc := entity.DocumentRef{Type: in.DocType, Number: in.DocNumber}
	seq := l.seqOutbound
	now := time.Now()
	for _, line := range in.Lines {
		code := catalog.NormalizeCode(line.Code)
		p := l.findProduct(wh, code)
		if p == nil {
			res.Rejected = append(res.Rejected, RejectedLine{Code: code, Reason: domain.ErrNotFound})
			continue
		}
		if p.Stock < line.Quantity {
			res.Rejected = append(res.Rejected, RejectedLine{
				Code:   code,
				Reason: &domain.StockError{Code: code, Requested: line.Quantity, Available: p.Stock},
			})
			continue
		}
		p.Stock -= line.Quantity
		p.UpdatedAt = now
		item := entity.MovementItem{
			Code:        p.Code,
			Name:        p.Name,
			Description: p.Description,
			Quantity:    line.Quantity,
		}
		res.Accepted = append(res.Accepted, item)
		l.movements = append(l.movements,
			entity.NewOutbound(uuid.New().String(), seq, now, doc, in.Reason, item, in.User))
	}
	if len(res.Accepted) == 0 {
		return res, nil
	}

	res.Seq = seq
	l.seqOutbound++
	if err := l.persistAfterMovement(); err != nil {
		return nil, err
	}
	l.log.Info().Int64("correlativo", res.Seq).Str("bodega", wh).
		Int("aceptadas", len(res.Accepted)).Int("rechazadas", len(res.Rejected)).
		Msg("salida registrada")
	return res, nil
}

// TransferInput traslado entre dos bodegas. En una línea, Quantity == 0
// significa trasladar todo el stock actual de ese producto.
type TransferInput struct {
	From  string
	To    string
	Lines []Line
	User  string
}

// TransferResult resultado de un traslado aplicado completo.
type TransferResult struct {
	Seq   int64
	Items []entity.MovementItem
}

// TransferStock mueve stock de la bodega origen a la destino en dos fases:
// primero valida todas las líneas, después aplica todas; un traslado nunca
// queda a medias. La bodega destino se crea si no existe. Los productos del
// origen que quedan en cero se retiran de su lista. El movimiento TRASLADO
// usa el correlativo de salidas (contador compartido) y lo avanza.
func (l *Ledger) TransferStock(in TransferInput) (*TransferResult, error) {
	from := catalog.NormalizeWarehouse(in.From)
	to := catalog.NormalizeWarehouse(in.To)
	if from == "" || to == "" || from == to {
		return nil, domain.ErrInvalidTransfer
	}
	if l.findWarehouse(from) == nil {
		return nil, fmt.Errorf("%w: bodega origen %s no existe", domain.ErrInvalidTransfer, from)
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Fase 1: validar todas las líneas contra el origen.
	type planned struct {
		src *entity.Product
		qty int
	}
	plan := make([]planned, 0, len(in.Lines))
	seen := make(map[string]bool, len(in.Lines))
	for _, line := range in.Lines {
		code := catalog.NormalizeCode(line.Code)
		if seen[code] {
			return nil, fmt.Errorf("%w: línea repetida %s", domain.ErrInvalidInput, code)
		}
		seen[code] = true
		p := l.findProduct(from, code)
		if p == nil {
			return nil, fmt.Errorf("%w: %s en %s", domain.ErrNotFound, code, from)
		}
		qty := line.Quantity
		if qty == 0 {
			qty = p.Stock // convención: trasladar todo el stock de la línea
		}
		if qty < 0 {
			return nil, fmt.Errorf("%w: cantidad negativa para %s", domain.ErrInvalidInput, code)
		}
		if qty > p.Stock {
			return nil, &domain.StockError{Code: code, Requested: qty, Available: p.Stock}
		}
		plan = append(plan, planned{src: p, qty: qty})
	}

	// Fase 2: aplicar; ya no puede fallar ninguna línea.
	if l.findWarehouse(to) == nil {
		if _, err := l.AddWarehouse(to); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	items := make([]entity.MovementItem, 0, len(plan))
	for _, pl := range plan {
		dst := l.findProduct(to, pl.src.Code)
		if dst != nil {
			dst.Stock += pl.qty
			dst.UpdatedAt = now
		} else {
			clone := pl.src.Clone()
			clone.ID = uuid.New().String()
			clone.Stock = pl.qty
			clone.Warehouse = to
			clone.CreatedAt = now
			clone.UpdatedAt = now
			l.products = append(l.products, clone)
		}
		pl.src.Stock -= pl.qty
		pl.src.UpdatedAt = now
		items = append(items, entity.MovementItem{
			Code:        pl.src.Code,
			Name:        pl.src.Name,
			Description: pl.src.Description,
			Quantity:    pl.qty,
		})
	}
	l.dropEmptyProducts(from)

	seq := l.seqOutbound
	mov := entity.NewTransfer(uuid.New().String(), seq, now,
		entity.TransferRoute{From: from, To: to}, items, in.User)
	l.movements = append(l.movements, mov)
	l.seqOutbound++

	if err := l.persistAfterMovement(); err != nil {
		return nil, err
	}
	l.log.Info().Int64("correlativo", seq).Str("origen", from).Str("destino", to).
		Int("lineas", len(items)).Msg("traslado registrado")
	return &TransferResult{Seq: seq, Items: items}, nil
}

// dropEmptyProducts filtra de la bodega los productos que quedaron en cero
// tras un traslado (baja implícita).
func (l *Ledger) dropEmptyProducts(warehouse string) {
	kept := l.products[:0]
	for _, p := range l.products {
		if p.Warehouse == warehouse && p.Stock == 0 {
			continue
		}
		kept = append(kept, p)
	}
	l.products = kept
}

// persistAfterMovement guarda las colecciones afectadas por cualquier
// operación de movimiento. Si una escritura falla se devuelve ErrPersistence;
// el estado en memoria conserva la operación y Flush permite reintentar.
func (l *Ledger) persistAfterMovement() error {
	if err := l.save(keyProducts, l.products); err != nil {
		return err
	}
	if err := l.save(keyMovements, l.movements); err != nil {
		return err
	}
	if err := l.save(keySeqInbound, l.seqInbound); err != nil {
		return err
	}
	return l.save(keySeqOutbound, l.seqOutbound)
}

// ── Consulta de movimientos ───────────────────────────────────────────────────

// MovementFilter filtro de consulta: texto libre más visibilidad por tipo.
// Con los tres toggles apagados el filtro es neutro y muestra todos los tipos.
type MovementFilter struct {
	Text     string
	Inbound  bool
	Outbound bool
	Transfer bool
}

// Movements devuelve los movimientos que pasan el filtro, siempre en orden de
// inserción. Es de solo lectura: nunca muta el log.
func (l *Ledger) Movements(f MovementFilter) []*entity.Movement {
	neutral := !f.Inbound && !f.Outbound && !f.Transfer
	text := strings.ToLower(strings.TrimSpace(f.Text))
	out := make([]*entity.Movement, 0, len(l.movements))
	for _, m := range l.movements {
		switch m.Kind {
		case entity.MovementKindInbound:
			if !neutral && !f.Inbound {
				continue
			}
		case entity.MovementKindOutbound:
			if !neutral && !f.Outbound {
				continue
			}
		case entity.MovementKindTransfer:
			if !neutral && !f.Transfer {
				continue
			}
		}
		if text != "" && !movementMatches(m, text) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func movementMatches(m *entity.Movement, text string) bool {
	if strings.Contains(strings.ToLower(m.Kind), text) ||
		strings.Contains(strings.ToLower(m.Detail), text) ||
		strings.Contains(strconv.FormatInt(m.Seq, 10), text) {
		return true
	}
	if m.Document != nil {
		if strings.Contains(strings.ToLower(m.Document.Type), text) ||
			strings.Contains(strings.ToLower(m.Document.Number), text) {
			return true
		}
	}
	if m.Route != nil {
		if strings.Contains(strings.ToLower(m.Route.From), text) ||
			strings.Contains(strings.ToLower(m.Route.To), text) {
			return true
		}
	}
	for _, it := range m.Items {
		if strings.Contains(strings.ToLower(it.Code), text) ||
			strings.Contains(strings.ToLower(it.Name), text) {
			return true
		}
	}
	return false
}
