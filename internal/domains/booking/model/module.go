package model

import (
	"slices"
	"strings"
	slotModel "visitorpass/internal/domains/slot/model"
	"visitorpass/shared/failure"
)

// Module tags a booking category. Each module owns one table.
type Module string

const (
	ModuleEpass         Module = "EPASS"
	ModuleFood          Module = "FOOD"
	ModuleAccommodation Module = "ACCOMMODATION"
	ModuleEcoFee        Module = "ECO_FEE"
)

const (
	StatusBooked    = "BOOKED"
	StatusDeclared  = "DECLARED"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

type moduleSpec struct {
	table         string
	slotColumn    string
	slotKind      slotModel.Kind
	initialStatus string
}

var modules = map[Module]moduleSpec{
	ModuleEpass: {
		table:         TableEpass,
		slotColumn:    FieldSlotID,
		slotKind:      slotModel.KindEntry,
		initialStatus: StatusBooked,
	},
	ModuleFood: {
		table:         TableFood,
		slotColumn:    FieldFoodSlotID,
		slotKind:      slotModel.KindFood,
		initialStatus: StatusBooked,
	},
	ModuleAccommodation: {
		table:         TableAccommodation,
		initialStatus: StatusBooked,
	},
	ModuleEcoFee: {
		table:         TableEcoDeclaration,
		initialStatus: StatusDeclared,
	},
}

// Modules lists every known module in a stable order.
func Modules() []Module {
	return []Module{ModuleEpass, ModuleFood, ModuleAccommodation, ModuleEcoFee}
}

// BookingModules are the modules that hold a reservation rather than a declaration.
func BookingModules() []Module {
	return []Module{ModuleEpass, ModuleFood, ModuleAccommodation}
}

// ParseModule accepts a module tag in any case.
func ParseModule(value string) (Module, error) {
	module := Module(strings.ToUpper(strings.TrimSpace(value)))

	if _, ok := modules[module]; !ok {
		return "", failure.InvalidModuleError
	}

	return module, nil
}

func (m Module) Valid() bool {
	_, ok := modules[m]

	return ok
}

func (m Module) Table() string {
	return modules[m].table
}

func (m Module) SlotColumn() string {
	return modules[m].slotColumn
}

// SlotKind is empty for modules that hold no capacity.
func (m Module) SlotKind() slotModel.Kind {
	return modules[m].slotKind
}

func (m Module) InitialStatus() string {
	return modules[m].initialStatus
}

// CancellableStatuses are the statuses a visitor may cancel from.
func CancellableStatuses() []string {
	return []string{StatusBooked, StatusDeclared}
}

// AdminCancellableStatuses additionally allow cancelling a paid booking.
func AdminCancellableStatuses() []string {
	return []string{StatusBooked, StatusDeclared, StatusConfirmed}
}

// PayableStatuses are the statuses a payment may confirm.
func PayableStatuses() []string {
	return []string{StatusBooked, StatusDeclared}
}

func IsCancellable(status string) bool {
	return slices.Contains(CancellableStatuses(), status)
}
