package transformer

import (
	"github.com/industry-digital/flux-game-sub002/internal/urn"
	"github.com/industry-digital/flux-game-sub002/internal/world"
)

// EquipmentAPI is the narrow capability handlers depend on for
// equipped-item lookups (spec §4.3 resolveEquippedWeapon).
type EquipmentAPI interface {
	GetEquippedWeapon(actor urn.URN) (world.Item, bool)
}

// PartyAPI is the narrow capability handlers depend on for group
// membership queries.
type PartyAPI interface {
	MembersOf(group urn.URN) []urn.URN
}

// CurrencyAPI is the narrow capability handlers depend on to move
// currency between actors and the world bank.
type CurrencyAPI interface {
	Credit(actor urn.URN, currency string, amount int, memo string) error
}

// SchemaManager stands in for getSchemaTranslation: narrative/label
// lookups by key, out of scope for this core beyond the interface shape.
type SchemaManager interface {
	Translate(key string, args ...any) string
}

// MassAPI is the narrow capability handlers depend on for item weight
// lookups (carry-capacity checks, etc).
type MassAPI interface {
	Of(item urn.URN) (float64, bool)
}
