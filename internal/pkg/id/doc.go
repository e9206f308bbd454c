// Package id is the identifier codec for the datasets service.
//
// Identifiers travel as opaque strings and are stored as UUIDs. Parse
// converts in one direction and fails with an InvalidArgument error on
// malformed input; Format converts back.
//
//	datasetID, err := id.Parse(req.ID)
//	if err != nil {
//	    return nil, err // InvalidArgument
//	}
//
// NewBucketName produces the 32-character hex names used for freshly
// provisioned object-storage buckets.
package id
