package domain

import (
	"encoding/json"
	"strings"
)

// CatalogRow represents one product from the catalog snapshot.
// Text fields used by matching (category path, name, color, detail, gender)
// are normalized to lowercase by the catalog loader before matching sees them.
type CatalogRow struct {
	StoreID      string   `json:"storeId"`
	GoodID       string   `json:"goodId"`
	CategoryPath []string `json:"categoryPath"` // first token = top-level category
	Name         string   `json:"name"`
	Color        string   `json:"color"`
	Fabric       string   `json:"fabric"`
	Pattern      string   `json:"pattern"`
	Detail       string   `json:"detail"`
	Gender       string   `json:"gender"` // "female" | "male" | "unisex"
	ImageURL     string   `json:"imageUrl"`
	Price        float64  `json:"price"`
	Brand        string   `json:"brand,omitempty"`
	LookLabel    string   `json:"lookLabel,omitempty"`
}

// TopCategory returns the first token of the category path, or "" when the
// path is empty.
func (r CatalogRow) TopCategory() string {
	if len(r.CategoryPath) == 0 {
		return ""
	}
	return r.CategoryPath[0]
}

// RequestedItem is a single garment the matcher must find. Category is
// required; the remaining attributes are optional refinements.
type RequestedItem struct {
	Category string `json:"category"`
	Color    string `json:"color,omitempty"`
	Fabric   string `json:"fabric,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
	Detail   string `json:"detailes,omitempty"` // field name matches the LLM output schema
}

// ItemList is an ordered sequence of requested items. The LLM is free to emit
// a slot as nothing, a bare string, a single object, or a list mixing both;
// all of those decode into a flat []RequestedItem.
type ItemList []RequestedItem

// UnmarshalJSON accepts null, "category", {item}, or a list of strings/items.
func (l *ItemList) UnmarshalJSON(data []byte) error {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}

	switch data[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make(ItemList, 0, len(raw))
		for _, elem := range raw {
			item, err := unmarshalItem(elem)
			if err != nil {
				return err
			}
			if item != nil {
				items = append(items, *item)
			}
		}
		*l = items
		return nil
	default:
		item, err := unmarshalItem(data)
		if err != nil {
			return err
		}
		if item == nil {
			*l = nil
			return nil
		}
		*l = ItemList{*item}
		return nil
	}
}

// unmarshalItem decodes one element that may be a string or an item object.
// Nulls decode to nil and are dropped from the list.
func unmarshalItem(data []byte) (*RequestedItem, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		// Blank strings are kept as blank-category items so that list
		// positions (and therefore result keys) stay stable; the filter
		// skips them at match time.
		return &RequestedItem{Category: s}, nil
	}

	var item RequestedItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// OutfitRequest is the structured outfit the LLM produces for one user query.
// The seven garment slots drive matching; the style metadata is informational
// and passed through to the presentation layer untouched.
type OutfitRequest struct {
	Sex string `json:"sex,omitempty"` // "f"/"female", "m"/"male", "u"/"unisex"

	Season           string   `json:"season,omitempty"`
	Style            []string `json:"style,omitempty"`
	Fit              string   `json:"fit,omitempty"`
	Fabric           []string `json:"fabric,omitempty"`
	Material         []string `json:"material,omitempty"`
	ColorTemperature string   `json:"color_temperature,omitempty"`
	ColorTone        string   `json:"color_tone,omitempty"`
	Pattern          []string `json:"pattern,omitempty"`
	Construction     []string `json:"construction,omitempty"`
	Length           string   `json:"length,omitempty"`

	Top         ItemList `json:"top,omitempty"`
	Bottom      ItemList `json:"bottom,omitempty"`
	Full        ItemList `json:"full,omitempty"`
	Shoes       ItemList `json:"shoes,omitempty"`
	Bag         ItemList `json:"bag,omitempty"`
	Outerwear   ItemList `json:"outerwear,omitempty"`
	Accessories ItemList `json:"accessories,omitempty"`
}

// Slot names in the fixed orchestration order.
const (
	SlotTop         = "top"
	SlotBottom      = "bottom"
	SlotFull        = "full"
	SlotShoes       = "shoes"
	SlotBag         = "bag"
	SlotOuterwear   = "outerwear"
	SlotAccessories = "accessories"
)

// SlotOrder is the fixed order garment slots are matched in.
var SlotOrder = []string{
	SlotTop, SlotBottom, SlotFull, SlotShoes, SlotBag, SlotOuterwear, SlotAccessories,
}

// Slot returns the item list for the named slot, or nil for unknown names.
func (o *OutfitRequest) Slot(name string) ItemList {
	switch name {
	case SlotTop:
		return o.Top
	case SlotBottom:
		return o.Bottom
	case SlotFull:
		return o.Full
	case SlotShoes:
		return o.Shoes
	case SlotBag:
		return o.Bag
	case SlotOuterwear:
		return o.Outerwear
	case SlotAccessories:
		return o.Accessories
	}
	return nil
}

// MatchResult maps "{slot}_{category}_{idx}" keys to the matched rows for
// that requested item. Slots and items with no matches are omitted entirely.
type MatchResult map[string][]CatalogRow
