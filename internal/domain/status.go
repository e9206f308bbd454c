package domain

// Status is the acknowledgement returned by operations without a resource body
type Status struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Bucket is a provisioned object-storage bucket
type Bucket struct {
	Name string `json:"name"`
}
