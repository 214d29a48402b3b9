package handlers

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildMediaSearchFilterEmptyTermMatchesAll(t *testing.T) {
	filter := buildMediaSearchFilter("")
	if len(filter) != 0 {
		t.Fatalf("expected empty filter for empty term, got %v", filter)
	}
}

func TestBuildMediaSearchFilterCoversLegacyFields(t *testing.T) {
	filter := buildMediaSearchFilter("villa")

	or, ok := filter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or clause, got %v", filter)
	}
	if len(or) != 4 {
		t.Fatalf("expected 4 field clauses, got %d", len(or))
	}

	for i, field := range []string{"name", "Name", "productNo", "SKU"} {
		clause, ok := or[i][field].(bson.M)
		if !ok {
			t.Fatalf("expected clause for %s at position %d, got %v", field, i, or[i])
		}
		if clause["$regex"] != "villa" {
			t.Fatalf("expected verbatim term in %s clause, got %v", field, clause)
		}
		if clause["$options"] != "i" {
			t.Fatalf("expected case-insensitive option in %s clause, got %v", field, clause)
		}
	}
}

func TestNormalizeMediaDocumentEmptyRecordGetsFallbacks(t *testing.T) {
	product := NormalizeMediaDocument(bson.M{})

	if product.Name != "Untitled" {
		t.Fatalf("expected name fallback Untitled, got %q", product.Name)
	}
	if product.ProductNo != "N/A" {
		t.Fatalf("expected productNo fallback N/A, got %q", product.ProductNo)
	}
	if product.PlanType != "N/A" {
		t.Fatalf("expected planType fallback N/A, got %q", product.PlanType)
	}
	if product.MainImage != nil {
		t.Fatalf("expected nil mainImage, got %q", *product.MainImage)
	}
	if product.PlanFile == nil || len(product.PlanFile) != 0 {
		t.Fatalf("expected empty planFile slice, got %v", product.PlanFile)
	}
}

func TestNormalizeMediaDocumentJSONShape(t *testing.T) {
	body, err := json.Marshal(NormalizeMediaDocument(bson.M{}))
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}

	jsonBody := string(body)
	for _, want := range []string{
		`"_id":null`,
		`"name":"Untitled"`,
		`"productNo":"N/A"`,
		`"planType":"N/A"`,
		`"mainImage":null`,
		`"planFile":[]`,
	} {
		if !strings.Contains(jsonBody, want) {
			t.Fatalf("expected %s in response json, got %s", want, jsonBody)
		}
	}
}

func TestNormalizeMediaDocumentCurrentSchemaWins(t *testing.T) {
	product := NormalizeMediaDocument(bson.M{
		"name":      "A",
		"Name":      "B",
		"productNo": "P1",
		"SKU":       "S1",
		"mainImage": "m.jpg",
		"Images":    "a.jpg, b.jpg",
	})

	if product.Name != "A" {
		t.Fatalf("expected name field to win over Name, got %q", product.Name)
	}
	if product.ProductNo != "P1" {
		t.Fatalf("expected productNo field to win over SKU, got %q", product.ProductNo)
	}
	if product.MainImage == nil || *product.MainImage != "m.jpg" {
		t.Fatalf("expected mainImage field to win over Images, got %v", product.MainImage)
	}
}

func TestNormalizeMediaDocumentLegacyFields(t *testing.T) {
	product := NormalizeMediaDocument(bson.M{
		"Name": "Villa Rosa",
		"SKU":  "VILLA-01",
	})

	if product.Name != "Villa Rosa" {
		t.Fatalf("expected legacy Name to be used, got %q", product.Name)
	}
	if product.ProductNo != "VILLA-01" {
		t.Fatalf("expected legacy SKU to be used, got %q", product.ProductNo)
	}
}

func TestResolveMainImageFromLegacyImagesString(t *testing.T) {
	product := NormalizeMediaDocument(bson.M{
		"Images": " a.jpg , b.jpg",
	})

	if product.MainImage == nil || *product.MainImage != "a.jpg" {
		t.Fatalf("expected trimmed first Images entry a.jpg, got %v", product.MainImage)
	}
}

func TestResolvePlanFileLegacyScanOrder(t *testing.T) {
	product := NormalizeMediaDocument(bson.M{
		"Download 2 URL": "u2",
		"Download 1 URL": "u1",
		"Download 5 URL": "u5",
	})

	if !reflect.DeepEqual(product.PlanFile, []string{"u1", "u2", "u5"}) {
		t.Fatalf("expected ascending index order with gaps skipped, got %v", product.PlanFile)
	}
}

func TestResolvePlanFileArrayWinsOverLegacyFields(t *testing.T) {
	product := NormalizeMediaDocument(bson.M{
		"planFile":       primitive.A{"x"},
		"Download 1 URL": "u1",
	})

	if !reflect.DeepEqual(product.PlanFile, []string{"x"}) {
		t.Fatalf("expected planFile array to win, got %v", product.PlanFile)
	}
}

func TestResolvePlanFileEmptyArrayFallsBackToLegacyFields(t *testing.T) {
	product := NormalizeMediaDocument(bson.M{
		"planFile":       primitive.A{},
		"Download 1 URL": "u1",
	})

	if !reflect.DeepEqual(product.PlanFile, []string{"u1"}) {
		t.Fatalf("expected legacy scan when planFile is empty, got %v", product.PlanFile)
	}
}

func TestNormalizeMediaDocumentDoesNotMutateInput(t *testing.T) {
	raw := bson.M{
		"Name":   "Villa",
		"Images": "a.jpg,b.jpg",
	}

	NormalizeMediaDocument(raw)

	if len(raw) != 2 || raw["Name"] != "Villa" || raw["Images"] != "a.jpg,b.jpg" {
		t.Fatalf("expected input document to be untouched, got %v", raw)
	}
}

func TestNormalizeMediaDocumentCopiesIDUnchanged(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("fixture id invalid: %v", err)
	}

	product := NormalizeMediaDocument(bson.M{"_id": id})
	if product.ID != id {
		t.Fatalf("expected _id copied unchanged, got %v", product.ID)
	}
}
