// Package domain contains the vendor network model: provinces and cities,
// scored certifications, the three kinds of vendor and the distribution
// centers that group them. Every rule here is a pure, in-memory computation
// over the object graph; entity equality is pointer identity, never a
// comparison of field values.
package domain
