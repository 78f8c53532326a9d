package db

type Config struct {
	// Type selects the dialect: postgres, mysql or sqlite.
	Type string
	// URL is the DSN handed to the driver (a file path for sqlite).
	URL             string
	Name            string
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}
