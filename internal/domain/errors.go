package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrUnknownRegion la región no tiene libro de inventario.
	ErrUnknownRegion = errors.New("región no encontrada")
	// ErrInsufficientCapacity el material no cabe en el espacio disponible (riesgo: Stock Overflow).
	ErrInsufficientCapacity = errors.New("espacio insuficiente en la bodega")
	// ErrMaterialNotFound no hay ninguna entrada con ese nombre de material en la región.
	ErrMaterialNotFound = errors.New("material no encontrado")
	// ErrNotificationDeliveryFailure la notificación no pudo entregarse; no se reintenta.
	ErrNotificationDeliveryFailure = errors.New("fallo en la entrega de la notificación")
	// ErrInputSchema el dataset analizado no cumple el esquema requerido (fatal al cargar).
	ErrInputSchema = errors.New("esquema de entrada inválido")
)
