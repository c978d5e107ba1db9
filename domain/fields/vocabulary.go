package fields

import "sort"

// Vocabulary is the static configuration of known keys. It is passed to the
// normalizer and the registry partitioner explicitly.
type Vocabulary struct {
	// Synonyms maps an already normalized token to its canonical key.
	Synonyms map[string]string
	// GlobalKeys are shared by every wholesaler.
	GlobalKeys map[string]struct{}
	// ProviderKeys are filled from the catalog provider.
	ProviderKeys map[string]struct{}
}

func (v Vocabulary) IsGlobal(key string) bool {
	_, ok := v.GlobalKeys[key]
	return ok
}

func (v Vocabulary) IsProvider(key string) bool {
	_, ok := v.ProviderKeys[key]
	return ok
}

func (v Vocabulary) SortedGlobalKeys() []string {
	out := make([]string, 0, len(v.GlobalKeys))
	for k := range v.GlobalKeys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Synonyms: map[string]string{
			"alcohol":             KeyABV,
			"alcoholpercentage":   KeyABV,
			"alcohol_percentage":  KeyABV,
			"alcohol_perc":        KeyABV,
			"alc":                 KeyABV,
			"alc_vol":             KeyABV,
			"alcohol_by_volume":   KeyABV,
			"abv_percentage":      KeyABV,
			"productnaam":         KeyArtikelnaam,
			"product_naam":        KeyArtikelnaam,
			"product_name":        KeyArtikelnaam,
			"artikel_naam":        KeyArtikelnaam,
			"artikelomschrijving": KeyArtikelnaam,
			"naam":                KeyArtikelnaam,
			"inhoud":              KeyVolume,
			"inhoud_cl":           KeyVolume,
			"inhoud_ml":           KeyVolume,
			"content":             KeyVolume,
			"contents":            KeyVolume,
			"volume_cl":           KeyVolume,
			"volume_ml":           KeyVolume,
			"merk":                KeyMerknaam,
			"merk_naam":           KeyMerknaam,
			"brand":               KeyMerknaam,
			"brand_name":          KeyMerknaam,
			"brandname":           KeyMerknaam,
			"ean_code":            KeyEAN,
			"ean13":               KeyEAN,
			"ean_13":              KeyEAN,
			"barcode":             KeyEAN,
			"gtin":                KeyEAN,
			"artikelnummer":       KeySKU,
			"artikel_nummer":      KeySKU,
			"article_number":      KeySKU,
			"product_code":        KeySKU,
			"houdbaarheid_dagen":  "houdbaarheid",
			"shelf_life":          "houdbaarheid",
			"thtdagen":            "houdbaarheid",
			"gewicht_bruto":       "bruto_gewicht",
			"gross_weight":        "bruto_gewicht",
			"gewicht_netto":       "netto_gewicht",
			"net_weight":          "netto_gewicht",
			"land_van_herkomst":   "herkomst",
			"country_of_origin":   "herkomst",
			"omschrijving":        "marketing_omschrijving",
			"marketing_tekst":     "marketing_omschrijving",
			"serveer_tip":         "serveertip",
		},
		GlobalKeys: set(
			"houdbaarheid",
			"bruto_gewicht",
			"netto_gewicht",
			"verpakking",
			"eenheden_per_doos",
			"dozen_per_laag",
			"lagen_per_pallet",
			"allergenen",
			"herkomst",
		),
		ProviderKeys: set(
			KeyArtikelnaam,
			KeySKU,
			KeyEAN,
			KeyABV,
			KeyVolume,
		),
	}
}

func set(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}
