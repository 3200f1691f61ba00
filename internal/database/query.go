package database

import (
	"fmt"
	"strings"
)

// Valores por defecto de paginación
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// Pagination representa un par limit/offset normalizado
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// Paginate normaliza los parámetros de paginación. Página y límite
// inválidos (cero, negativos o ausentes) caen a los valores por defecto;
// el offset nunca es negativo. No se impone un tope superior al límite.
func Paginate(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Predicate acumula condiciones combinadas con AND usando placeholders $n.
// Sin condiciones, Where() retorna cadena vacía.
type Predicate struct {
	conds []string
	args  []interface{}
}

// NewPredicate crea un predicado vacío
func NewPredicate() *Predicate {
	return &Predicate{}
}

// AddContains agrega una condición de subcadena sin distinguir mayúsculas
func (p *Predicate) AddContains(column, value string) {
	p.args = append(p.args, "%"+value+"%")
	p.conds = append(p.conds, fmt.Sprintf("%s ILIKE $%d", column, len(p.args)))
}

// AddEquals agrega una condición de igualdad exacta
func (p *Predicate) AddEquals(column string, value interface{}) {
	p.args = append(p.args, value)
	p.conds = append(p.conds, fmt.Sprintf("%s = $%d", column, len(p.args)))
}

// AddGTE agrega una condición de mayor o igual
func (p *Predicate) AddGTE(column string, value interface{}) {
	p.args = append(p.args, value)
	p.conds = append(p.conds, fmt.Sprintf("%s >= $%d", column, len(p.args)))
}

// AddLTE agrega una condición de menor o igual
func (p *Predicate) AddLTE(column string, value interface{}) {
	p.args = append(p.args, value)
	p.conds = append(p.conds, fmt.Sprintf("%s <= $%d", column, len(p.args)))
}

// Where retorna la cláusula WHERE completa, o cadena vacía sin condiciones
func (p *Predicate) Where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(p.conds, " AND ")
}

// Args retorna los argumentos acumulados en orden de placeholder
func (p *Predicate) Args() []interface{} {
	return p.args
}

// ArgCount retorna la cantidad de argumentos acumulados
func (p *Predicate) ArgCount() int {
	return len(p.args)
}

// BuildVendorPredicate construye el predicado del listado de socios.
// Un campo de búsqueda desconocido no agrega condición; el valor se
// ignora en silencio. El estado "all" (o vacío) no restringe.
func BuildVendorPredicate(searchField, searchValue, invoiceStatus string) *Predicate {
	p := NewPredicate()

	if searchValue != "" {
		switch searchField {
		case "name":
			p.AddContains("name", searchValue)
		case "code":
			p.AddContains("code", searchValue)
		case "ceo":
			p.AddContains("ceo", searchValue)
		}
	}

	if invoiceStatus != "" && invoiceStatus != "all" {
		p.AddEquals("invoice_status", invoiceStatus)
	}

	return p
}

// BuildVendorSearchPredicate construye el predicado del diálogo de búsqueda
// de socios. Siempre restringe a socios activos: solo los socios en uso son
// seleccionables al generar facturas.
func BuildVendorSearchPredicate(searchField, searchValue string) *Predicate {
	p := NewPredicate()

	if searchValue != "" {
		switch searchField {
		case "name":
			p.AddContains("name", searchValue)
		case "code":
			p.AddContains("code", searchValue)
		case "ceo":
			p.AddContains("ceo", searchValue)
		}
	}

	p.AddEquals("invoice_status", "active")

	return p
}

// BuildContactPredicate construye el predicado del listado de contactos.
// Los campos name y code resuelven contra la tabla de socios unida.
func BuildContactPredicate(status, searchField, searchValue string) *Predicate {
	p := NewPredicate()

	if status != "" && status != "all" {
		p.AddEquals("c.status", status)
	}

	if searchValue != "" {
		switch searchField {
		case "name":
			p.AddContains("v.name", searchValue)
		case "code":
			p.AddContains("v.code", searchValue)
		case "branch":
			p.AddContains("c.branch", searchValue)
		case "email":
			p.AddContains("c.email", searchValue)
		}
	}

	return p
}

// BuildVendorFormPredicate construye el predicado del listado de plantillas
func BuildVendorFormPredicate(searchField, searchValue string) *Predicate {
	p := NewPredicate()

	if searchValue != "" {
		switch searchField {
		case "name":
			p.AddContains("v.name", searchValue)
		case "code":
			p.AddContains("v.code", searchValue)
		}
	}

	return p
}

// BuildBillingPredicate construye el predicado del listado de facturas
func BuildBillingPredicate(fromDate, toDate, searchField, searchValue, status string) *Predicate {
	p := NewPredicate()

	if fromDate != "" {
		p.AddGTE("b.created_at", fromDate)
	}
	if toDate != "" {
		p.AddLTE("b.created_at", toDate)
	}

	if searchValue != "" {
		switch searchField {
		case "name":
			p.AddContains("v.name", searchValue)
		case "code":
			p.AddContains("v.code", searchValue)
		case "ceo":
			p.AddContains("v.ceo", searchValue)
		case "email":
			p.AddContains("b.email", searchValue)
		}
	}

	if status != "" && status != "all" {
		p.AddEquals("b.status", status)
	}

	return p
}
