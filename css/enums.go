package css

// Unit of length value.
// ENUM(px, em)
type Unit int

// Shape of length value: one number for all sides or four sides.
// ENUM(single, all)
type LengthKind int
