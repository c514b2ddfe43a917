package catalog

import (
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `store_id,good_id,category_id,name,color,fabric,pattern,detailes,gender,image_external_url,price,brand,look_label
s1,g1,"['Dress', 'Midi Dress']",Blue Silk Dress,Blue,Silk,,pleats,Female,http://img/1.jpg,129.90,Acme,evening
s1,g2,"['Shirt']",White Linen Shirt,White,Linen,,,female,http://img/2.jpg,49.00,Acme,
s1,g3,sneakers,Canvas Sneakers,white,,,,unisex,http://img/3.jpg,79.50,,
`

func TestParse(t *testing.T) {
	rows, err := parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	t.Run("literal list category becomes lowercase token path", func(t *testing.T) {
		want := []string{"dress", "midi dress"}
		if !reflect.DeepEqual(rows[0].CategoryPath, want) {
			t.Errorf("CategoryPath = %v, want %v", rows[0].CategoryPath, want)
		}
	})

	t.Run("matching fields are lowercased", func(t *testing.T) {
		first := rows[0]
		if first.Name != "blue silk dress" || first.Color != "blue" ||
			first.Fabric != "silk" || first.Gender != "female" {
			t.Errorf("fields not lowercased: %+v", first)
		}
	})

	t.Run("passthrough fields keep their case", func(t *testing.T) {
		if rows[0].Brand != "Acme" || rows[0].ImageURL != "http://img/1.jpg" {
			t.Errorf("passthrough fields altered: %+v", rows[0])
		}
	})

	t.Run("price is parsed", func(t *testing.T) {
		if rows[0].Price != 129.90 {
			t.Errorf("Price = %v, want 129.90", rows[0].Price)
		}
	})

	t.Run("bare token category", func(t *testing.T) {
		if got := rows[2].TopCategory(); got != "sneakers" {
			t.Errorf("TopCategory = %q, want sneakers", got)
		}
	})
}

func TestParseRaggedRows(t *testing.T) {
	csv := "store_id,good_id,category_id,name,color\ns1,g1,dress,short row\n"
	rows, err := parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(rows) != 1 || rows[0].Color != "" {
		t.Errorf("ragged row not padded: %+v", rows)
	}
}

func TestParseMissingCategoryColumn(t *testing.T) {
	csv := "store_id,name\ns1,thing\n"
	if _, err := parse(strings.NewReader(csv)); err == nil {
		t.Error("expected error for missing category_id column")
	}
}

func TestParseLiteralList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"['dress', 'midi dress']", []string{"dress", "midi dress"}},
		{`["Shirt"]`, []string{"shirt"}},
		{"sneakers", []string{"sneakers"}},
		{"[]", nil},
		{"", nil},
		{"['', 'coat']", []string{"coat"}},
	}

	for _, tt := range tests {
		if got := parseLiteralList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseLiteralList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDedupRows(t *testing.T) {
	const dupCSV = `store_id,good_id,category_id,name,color,fabric,pattern,detailes,gender,image_external_url,price,brand,look_label
s1,g1,dress,first,blue,,,,female,http://img/1.jpg,10,,
s1,g2,dress,same image,red,,,,female,http://img/1.jpg,20,,
s2,g1,dress,same good other store,green,,,,female,http://img/3.jpg,30,,
s1,g1,dress,same good same store,black,,,,female,http://img/4.jpg,40,,
`
	rows, err := parse(strings.NewReader(dupCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	deduped := dedupRows(rows)
	if len(deduped) != 2 {
		t.Fatalf("got %d rows, want 2: %+v", len(deduped), deduped)
	}
	if deduped[0].Name != "first" {
		t.Errorf("dedup did not keep the first occurrence: %+v", deduped[0])
	}
	if deduped[1].Name != "same good other store" {
		t.Errorf("distinct (good, store) pair was dropped: %+v", deduped)
	}
}
