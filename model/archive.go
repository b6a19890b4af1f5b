package model

// ArchiveVersion is bumped whenever the shape of an archived entity changes.
const ArchiveVersion = 1

// Kinds identifying each archivable entity.
const (
	KindOption      = "pizzaconfig.Option"
	KindOptionSet   = "pizzaconfig.OptionSet"
	KindPizzaConfig = "pizzaconfig.PizzaConfig"
)

// ArchiveTag is the stable identity an entity carries when archived.
type ArchiveTag struct {
	Kind    string `json:"kind"`
	Version int    `json:"version"`
}

// Archivable is implemented by every entity that can be archived as part
// of a PizzaConfig tree. Encoding itself is left to the caller.
type Archivable interface {
	ArchiveTag() ArchiveTag
}

var (
	_ Archivable = (*Option)(nil)
	_ Archivable = (*OptionSet)(nil)
	_ Archivable = (*PizzaConfig)(nil)
)

func (o *Option) ArchiveTag() ArchiveTag {
	return ArchiveTag{Kind: KindOption, Version: ArchiveVersion}
}

func (s *OptionSet) ArchiveTag() ArchiveTag {
	return ArchiveTag{Kind: KindOptionSet, Version: ArchiveVersion}
}

func (c *PizzaConfig) ArchiveTag() ArchiveTag {
	return ArchiveTag{Kind: KindPizzaConfig, Version: ArchiveVersion}
}
