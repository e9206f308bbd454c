// Package versioning computes dataset version labels.
//
// Labels are dotted digit sequences derived from a counter. They are not
// semantic versions: the label after "9" is "1.0" and the label after "1.9"
// is "2.0".
package versioning
