package fields

type Scope string

const (
	ScopeGlobal     Scope = "global"
	ScopeWholesaler Scope = "wholesaler"
)

func (s Scope) String() string {
	return string(s)
}

func (s Scope) IsValid() bool {
	switch s {
	case ScopeGlobal, ScopeWholesaler:
		return true
	default:
		return false
	}
}

// Source is the provenance tag of a field definition. Display only.
type Source string

const (
	SourceManual Source = "manual"
	SourceBreww  Source = "breww"
	SourceAI     Source = "ai"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceManual, SourceBreww, SourceAI:
		return true
	default:
		return false
	}
}

// Canonical keys the catalog provider fills.
const (
	KeyArtikelnaam = "artikelnaam"
	KeySKU         = "sku"
	KeyEAN         = "ean"
	KeyABV         = "abv"
	KeyVolume      = "volume"
	KeyMerknaam    = "merknaam"
)

// Keys the inference prompt asks for by preference.
var preferredKeys = []string{
	"artikelnaam",
	"ean",
	"sku",
	"abv",
	"volume",
	"merknaam",
	"verpakking",
	"inhoud",
	"herkomst",
	"allergenen",
	"marketing_omschrijving",
}

func PreferredKeys() []string {
	return preferredKeys
}
