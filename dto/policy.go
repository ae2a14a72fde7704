package dto

// Policy is the field visibility configuration of one entity: which fields a
// client may supply, which of those are mandatory on create, and which fields
// are omitted from responses. ReadOmit applies to list responses and to the
// bodies returned by create, update and membership operations; DetailOmit
// applies to get-by-id responses. Collection back-references never appear on
// any output, the model structs keep them out of the json form entirely.
type Policy struct {
	Writable   []string
	Required   []string
	ReadOmit   []string
	DetailOmit []string
}

var policies = map[string]Policy{
	"user": {
		Writable: []string{"name", "email"},
		Required: []string{"name", "email"},
	},
	"city": {
		Writable: []string{"name", "country"},
		Required: []string{"name", "country"},
	},
	"travel": {
		Writable: []string{"name", "description", "start_date", "end_date"},
		Required: []string{"name", "start_date", "end_date"},
	},
	"accommodation": {
		Writable:   []string{"name", "description", "location", "price", "start_date", "end_date", "observations", "travel_id", "city_id"},
		Required:   []string{"name", "location", "price", "start_date", "end_date", "travel_id", "city_id"},
		ReadOmit:   []string{"city", "travel"},
		DetailOmit: []string{"city_id"},
	},
	"transport": {
		Writable:   []string{"type", "company", "price", "start_datetime", "start_location", "end_datetime", "end_location", "travel_id", "start_city_id", "end_city_id"},
		Required:   []string{"type", "company", "price", "start_datetime", "start_location", "end_datetime", "end_location", "travel_id", "start_city_id", "end_city_id"},
		ReadOmit:   []string{"start_city_id", "end_city_id"},
		DetailOmit: []string{"start_city_id", "end_city_id"},
	},
	"activity": {
		Writable: []string{"name", "description", "location", "start_datetime", "price", "duration", "travel_id", "city_id"},
		Required: []string{"name", "location", "start_datetime", "price", "duration", "travel_id", "city_id"},
		ReadOmit: []string{"city", "travel"},
	},
	"expense": {
		Writable: []string{"description", "amount", "datetime", "user_id", "travel_id"},
		Required: []string{"description", "amount", "datetime", "user_id", "travel_id"},
	},
}

// PolicyFor returns the visibility policy of the named entity.
func PolicyFor(entity string) Policy {
	return policies[entity]
}
