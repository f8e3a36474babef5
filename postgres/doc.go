/*
Package postgres manages our database connection and plugs enumlist codecs into GORM.

[Connect] opens a GORM connection to PostgreSQL and runs every [Migration] not yet recorded.
When the database is simply a target for some testing, the public schema is dropped first.

[RegisterColumn] registers an [enumlist.Column], such as an *enumlist.ListCodec,
as a GORM serializer; a model field opts into it with the tag `gorm:"serializer:<name>"`.
The column is stored as text: NULL for a nil collection and the empty string for an empty one.

[DB] wraps *gorm.DB, translating GORM and PostgreSQL failures into enumlist's sentinel errors
while keeping codec errors in the chain.
*/
package postgres
