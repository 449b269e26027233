package content

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is an opaque content document. Testimonials, success stories and
// FAQ entries are authored out-of-band and delivered to clients as stored.
type Document = bson.M

// Repository defines read access to content collections.
type Repository interface {
	// FindFirst returns at most limit documents from the named collection in
	// the store's natural delivery order. An absent or empty collection
	// yields an empty slice, never nil.
	FindFirst(ctx context.Context, collection string, limit int64) ([]Document, error)
}
