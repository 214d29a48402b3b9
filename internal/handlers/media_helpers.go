package handlers

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

/* =======================
   SEARCH FILTER
======================= */

// mediaSearchFields lists every historical field name a catalog search must
// cover. Retiring a legacy schema variant means removing its entry here.
var mediaSearchFields = []string{"name", "Name", "productNo", "SKU"}

// buildMediaSearchFilter matches the term as a case-insensitive substring
// against all current and legacy name/catalog-number fields. The term is
// embedded verbatim; the endpoint sits behind the admin guard and regex
// metacharacters are passed through to Mongo unchanged.
func buildMediaSearchFilter(searchTerm string) bson.M {
	if searchTerm == "" {
		return bson.M{}
	}

	or := make([]bson.M, 0, len(mediaSearchFields))
	for _, field := range mediaSearchFields {
		or = append(or, bson.M{field: bson.M{"$regex": searchTerm, "$options": "i"}})
	}
	return bson.M{"$or": or}
}

/* =======================
   NORMALIZATION
======================= */

const (
	legacyDownloadFields = 7

	fallbackName      = "Untitled"
	fallbackProductNo = "N/A"
	fallbackPlanType  = "N/A"
)

// stringField returns the value under key when it is a non-empty string.
// Missing keys and non-string values both read as absent.
func stringField(raw bson.M, key string) string {
	if value, ok := raw[key].(string); ok {
		return value
	}
	return ""
}

// resolveField walks candidate keys in precedence order and returns the first
// non-empty string value, or fallback when every candidate is absent. All
// legacy-schema precedence in the media picker goes through this one helper.
func resolveField(raw bson.M, fallback string, keys ...string) string {
	for _, key := range keys {
		if value := stringField(raw, key); value != "" {
			return value
		}
	}
	return fallback
}

// resolveMainImage prefers the explicit mainImage field, falling back to the
// first entry of the legacy comma-separated Images string. Returns nil when
// neither yields a value, so the JSON field renders as null.
func resolveMainImage(raw bson.M) *string {
	if value := stringField(raw, "mainImage"); value != "" {
		return &value
	}

	if images := stringField(raw, "Images"); images != "" {
		first := strings.TrimSpace(strings.SplitN(images, ",", 2)[0])
		if first != "" {
			return &first
		}
	}

	return nil
}

// resolvePlanFile uses a populated planFile array as-is; otherwise it scans
// the legacy "Download 1 URL".."Download 7 URL" fields in ascending order,
// keeping every non-empty value.
func resolvePlanFile(raw bson.M) []string {
	files := make([]string, 0)

	if arr, ok := raw["planFile"].(primitive.A); ok && len(arr) > 0 {
		for _, entry := range arr {
			if value, ok := entry.(string); ok {
				files = append(files, value)
			}
		}
		return files
	}

	for i := 1; i <= legacyDownloadFields; i++ {
		key := fmt.Sprintf("Download %d URL", i)
		if value := stringField(raw, key); value != "" {
			files = append(files, value)
		}
	}

	return files
}

// NormalizeMediaDocument maps one raw product document, in whichever
// historical shape it was stored, to the canonical media picker view. It
// never fails: every field has a defined fallback, and the input document is
// not modified.
func NormalizeMediaDocument(raw bson.M) models.MediaProduct {
	return models.MediaProduct{
		ID:        raw["_id"],
		Name:      resolveField(raw, fallbackName, "name", "Name"),
		ProductNo: resolveField(raw, fallbackProductNo, "productNo", "SKU"),
		PlanType:  resolveField(raw, fallbackPlanType, "planType"),
		MainImage: resolveMainImage(raw),
		PlanFile:  resolvePlanFile(raw),
	}
}
