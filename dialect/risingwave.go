package dialect

// RisingWave speaks the PostgreSQL dialect plus streaming DDL extensions
// such as CREATE STREAM ... ROW FORMAT.
type RisingWave struct {
	*Postgres
}

func NewRisingWaveDialect() Dialect {
	return &RisingWave{
		Postgres: NewPostgresDialect().(*Postgres),
	}
}

func (r *RisingWave) SupportsRowFormat() bool {
	return true
}
