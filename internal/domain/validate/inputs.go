package validate

import (
	"strings"

	"github.com/jcastrom/tienda-api/internal/domain/entity"
)

// UsersQuery valida los parámetros de listado de usuarios.
func UsersQuery(role, sortBy, sort, limit, offset string) Result {
	var r Result
	if !contains(entity.Roles, role) && strings.TrimSpace(role) != "" {
		r.add("Role is invalid")
	}
	r.listQuery("User", entity.UserFields(), sortBy, sort, limit, offset)
	return r
}

// SuppliersQuery valida los parámetros de listado de proveedores.
func SuppliersQuery(supplierID, sortBy, sort, limit, offset string) Result {
	var r Result
	if !isInteger(supplierID) {
		r.add("Supplier ID must be numeric")
	}
	r.listQuery("Supplier", entity.SupplierFields(), sortBy, sort, limit, offset)
	return r
}

// ProductsQuery valida los parámetros de listado de productos (rango de precio).
func ProductsQuery(minPrice, maxPrice, supplierID, sortBy, sort, limit, offset string) Result {
	var r Result
	if !isDecimal(minPrice) {
		r.add("Minimum price must be numeric")
	}
	if !isDecimal(maxPrice) {
		r.add("Maximum price must be numeric")
	}
	if !isInteger(supplierID) {
		r.add("Supplier ID must be numeric")
	}
	r.listQuery("Product", entity.ProductFields(), sortBy, sort, limit, offset)
	return r
}

// StocksQuery valida los parámetros de listado de stocks (rango de cantidad).
func StocksQuery(minQuantity, maxQuantity, productID, sortBy, sort, limit, offset string) Result {
	var r Result
	if !isInteger(minQuantity) {
		r.add("Minimum quantity must be numeric")
	}
	if !isInteger(maxQuantity) {
		r.add("Maximum quantity must be numeric")
	}
	if !isInteger(productID) {
		r.add("Product ID must be numeric")
	}
	r.listQuery("Stock", entity.StockFields(), sortBy, sort, limit, offset)
	return r
}

// OrdersQuery valida los parámetros de listado de pedidos.
func OrdersQuery(userID, sortBy, sort, limit, offset string) Result {
	var r Result
	if !isInteger(userID) {
		r.add("User ID must be numeric")
	}
	r.listQuery("Order", entity.OrderFields(), sortBy, sort, limit, offset)
	return r
}

// UserCreation valida el registro de un usuario.
func UserCreation(name, email, password, repeatPassword, role string) Result {
	var r Result
	if strings.TrimSpace(name) == "" {
		r.add("Name is empty")
	} else if len(strings.TrimSpace(name)) < 4 || len(strings.TrimSpace(name)) > 40 {
		r.add("Name must be greater than 4 characters")
	}
	if strings.TrimSpace(email) == "" {
		r.add("Email is empty")
	} else if !isEmail(email) {
		r.add("Input a valid email")
	}
	if len(strings.TrimSpace(password)) < 8 {
		r.add("Password must be greater than equals 8 characters")
	}
	if repeatPassword != password {
		r.add("Input correct password validation")
	}
	if !contains(entity.Roles, role) {
		r.add("Role is invalid")
	}
	return r
}

// UserUpdate valida la actualización de nombre y email de un usuario.
func UserUpdate(id, name, email string) Result {
	var r Result
	if !isInteger(id) {
		r.add("User ID must be numeric")
	}
	if strings.TrimSpace(name) == "" {
		r.add("Name is empty")
	} else if len(strings.TrimSpace(name)) < 4 || len(strings.TrimSpace(name)) > 40 {
		r.add("Name must be greater than 4 characters")
	}
	if strings.TrimSpace(email) == "" {
		r.add("Email is empty")
	} else if !isEmail(email) {
		r.add("Input a valid email")
	}
	return r
}

// UserLogin valida las credenciales de entrada del login.
func UserLogin(email, password string) Result {
	var r Result
	if strings.TrimSpace(email) == "" {
		r.add("Email is empty")
	} else if !isEmail(email) {
		r.add("Input a valid email")
	}
	if len(strings.TrimSpace(password)) < 8 {
		r.add("Password must be greater than equals 8 characters")
	}
	return r
}

// ProductCreation valida la creación de un producto con su stock inicial.
func ProductCreation(name, price, stock string) Result {
	var r Result
	if strings.TrimSpace(name) == "" {
		r.add("Name is empty")
	} else if len(strings.TrimSpace(name)) < 4 || len(strings.TrimSpace(name)) > 40 {
		r.add("Name must be greater than 4 characters")
	}
	if !isDecimal(price) || strings.TrimSpace(price) == "" {
		r.add("Price must be numeric and greater than 500")
	} else if toFloat(price) < 500 {
		r.add("Price must be numeric and greater than 500")
	}
	if !isInteger(stock) || strings.TrimSpace(stock) == "" {
		r.add("Stock must be numeric and greater than 10")
	} else if toInt(stock) < entity.MinInitialStock {
		r.add("Stock must be numeric and greater than 10")
	}
	return r
}

// OrderLine valida una línea de pedido: producto numérico y cantidad positiva.
func OrderLine(productID, quantity string) Result {
	var r Result
	if !isInteger(productID) || strings.TrimSpace(productID) == "" {
		r.add("Product ID must be numeric")
	}
	if !isInteger(quantity) || strings.TrimSpace(quantity) == "" {
		r.add("Quantity must be numeric")
	} else if toInt(quantity) <= 0 {
		r.add("Quantity must be greater than 0")
	}
	return r
}

// Transfer valida la entrada común de una transferencia de saldo: amount
// numérico y positivo, y los dos identificadores numéricos. Los labels nombran
// el origen y el destino ("Sender"/"Receiver", "Supplier"/"Product").
func Transfer(amount, sourceID, destinationID, sourceLabel, destinationLabel string) Result {
	var r Result
	if !isInteger(amount) {
		r.add("Amount must be numeric")
	} else if toInt(amount) <= 0 {
		r.add("Amount must be greater than 0")
	}
	if !isInteger(sourceID) || strings.TrimSpace(sourceID) == "" {
		r.add(sourceLabel + " ID must be numeric")
	}
	if !isInteger(destinationID) || strings.TrimSpace(destinationID) == "" {
		r.add(destinationLabel + " ID must be numeric")
	}
	return r
}

// NumericID valida un identificador de path.
func NumericID(label, id string) Result {
	var r Result
	if !isInteger(id) || strings.TrimSpace(id) == "" {
		r.add(label + " ID must be numeric")
	}
	return r
}
