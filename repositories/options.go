package repositories

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QueryOptions carries the sort and projection of a listing as they arrive
// from the query string: comma separated field names, "-" marking a
// descending sort key or an excluded field
type QueryOptions struct {
	Sort   string
	Fields string
}

func (o QueryOptions) findOptions() *options.FindOptions {
	opts := options.Find()
	if sort := parseSort(o.Sort); len(sort) > 0 {
		opts.SetSort(sort)
	}
	if projection := parseProjection(o.Fields); len(projection) > 0 {
		opts.SetProjection(projection)
	}
	return opts
}

// parseSort keeps the key order of the list
func parseSort(list string) bson.D {
	var sort bson.D
	for _, field := range splitFields(list) {
		dir := 1
		if strings.HasPrefix(field, "-") {
			dir = -1
			field = strings.TrimPrefix(field, "-")
		}
		if field == "" {
			continue
		}
		sort = append(sort, bson.E{Key: storeField(field), Value: dir})
	}
	return sort
}

// parseProjection builds an inclusion projection when any field is listed
// without "-"; exclusions then only apply to _id, the one field MongoDB
// allows to mix
func parseProjection(list string) bson.M {
	include, exclude := bson.M{}, bson.M{}
	for _, field := range splitFields(list) {
		if strings.HasPrefix(field, "-") {
			if name := strings.TrimPrefix(field, "-"); name != "" {
				exclude[storeField(name)] = 0
			}
			continue
		}
		include[storeField(field)] = 1
	}
	if len(include) == 0 {
		return exclude
	}
	if _, ok := exclude["_id"]; ok {
		include["_id"] = 0
	}
	return include
}

func splitFields(list string) []string {
	var fields []string
	for _, f := range strings.Split(list, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func storeField(field string) string {
	if field == "id" {
		return "_id"
	}
	return field
}
