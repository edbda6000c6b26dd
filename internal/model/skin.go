package model

// SkinID identifies a cosmetic skin in the catalog
type SkinID int

// DefaultSkin is granted to every player at registration and is always owned
const DefaultSkin SkinID = 0

// SkinCatalog maps skin identifiers to their price in stars.
// The catalog is read-only at runtime; the economy engine never mutates it.
type SkinCatalog map[SkinID]int

// Price returns the price of a skin, or false if the skin is not in the catalog
func (c SkinCatalog) Price(id SkinID) (int, bool) {
	price, ok := c[id]
	return price, ok
}

// DefaultSkinCatalog returns the built-in price table used when no
// catalog document is present. The default skin is free.
func DefaultSkinCatalog() SkinCatalog {
	return SkinCatalog{
		0: 0,
		1: 25,
		2: 25,
		3: 50,
		4: 50,
		5: 75,
		6: 75,
		7: 100,
		8: 150,
	}
}
