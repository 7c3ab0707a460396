// Package domain contains the core entities of the home catalog: items owned
// by users, the metadata imported for them from BoardGameGeek, and the tag
// taxonomy (publishers, artists, categories and so on). The types carry no
// infrastructure concerns so they can be shared across packages.
package domain
