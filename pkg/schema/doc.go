// Package schema validates decoded JSON documents against named schemas.
//
// Schemas are written as the components of an OpenAPI 3 document and checked
// with kin-openapi. Failures are reported as a single *AggregateError holding
// one *ValidationError per offending value, keyed by JSON pointer:
//
//	doc, err := schema.Load(specBytes)
//	if err != nil {
//	    // the schema document itself is broken
//	}
//
//	var value any
//	_ = json.Unmarshal(data, &value)
//
//	if err := doc.Validate("Program", value); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        fmt.Println(e)
//	    }
//	}
//
// The package only validates structure. It never converts or rewrites the value.
package schema
