package database

import (
	"net"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// DSN shapes, one per backend family: file-based backends carry a bare
// path, client/server backends carry credentials and a location. The
// password and the port may be empty.
var (
	filesystemDSN = regexp.MustCompile(`^(?P<adapter>\w+)://(?P<path>.*)$`)
	daemonDSN     = regexp.MustCompile(`^(?P<adapter>\w+)://(?P<user>[\w\d_.-]+):(?P<password>[\w\d_.-]*?)@(?P<host>.*?):(?P<port>\d*?)/(?P<database>.*?)$`)
)

// daemonInfo holds the parsed parts of a client/server DSN.
type daemonInfo struct {
	user     string
	password string
	host     string
	port     string
	database string
}

// parseFilesystemDSN extracts the path from a file-based DSN.
func parseFilesystemDSN(dsn string) (string, bool) {
	m := filesystemDSN.FindStringSubmatch(dsn)
	if m == nil {
		return "", false
	}
	return m[filesystemDSN.SubexpIndex("path")], true
}

// parseDaemonDSN extracts the connection details from a client/server
// DSN.
func parseDaemonDSN(dsn string) (*daemonInfo, bool) {
	m := daemonDSN.FindStringSubmatch(dsn)
	if m == nil {
		return nil, false
	}

	return &daemonInfo{
		user:     m[daemonDSN.SubexpIndex("user")],
		password: m[daemonDSN.SubexpIndex("password")],
		host:     m[daemonDSN.SubexpIndex("host")],
		port:     m[daemonDSN.SubexpIndex("port")],
		database: m[daemonDSN.SubexpIndex("database")],
	}, true
}

// conninfo renders the key/value connection string consumed by lib/pq.
// An empty port is omitted, and sslmode is not set here; lib/pq falls
// back to PGSSLMODE or its own default.
func (d *daemonInfo) conninfo() string {
	parts := []string{
		"dbname=" + conninfoQuote(d.database),
		"user=" + conninfoQuote(d.user),
		"password=" + conninfoQuote(d.password),
		"host=" + conninfoQuote(d.host),
	}
	if d.port != "" {
		parts = append(parts, "port="+conninfoQuote(d.port))
	}
	return strings.Join(parts, " ")
}

// conninfoQuote single-quotes a conninfo value, escaping backslashes
// and embedded quotes.
func conninfoQuote(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `\'`)
	return "'" + value + "'"
}

// mysqlConfig maps the parsed DSN onto the go-sql-driver configuration.
// Without a port the driver dials its default (3306).
func (d *daemonInfo) mysqlConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = d.user
	cfg.Passwd = d.password
	cfg.Net = "tcp"
	cfg.Addr = d.host
	if d.port != "" {
		cfg.Addr = net.JoinHostPort(d.host, d.port)
	}
	cfg.DBName = d.database
	return cfg
}
