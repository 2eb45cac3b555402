package config

import "testing"

// TestDSN_TCP はTCP接続用のDSN文字列が正しく生成されることを検証します。
func TestDSN_TCP(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		DBUser:     "testuser",
		DBPassword: "testpass",
		DBName:     "testdb",
		DBHost:     "localhost",
		DBPort:     "3306",
	}

	dsn := cfg.DSN()

	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestDSN_CloudSQL はCloud SQL Unixソケット接続用のDSN文字列が正しく生成されることを検証します。
func TestDSN_CloudSQL(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		DBUser:                 "testuser",
		DBPassword:             "testpass",
		DBName:                 "testdb",
		InstanceConnectionName: "project:region:instance",
	}

	dsn := cfg.DSN()

	expected := "testuser:testpass@unix(/cloudsql/project:region:instance)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestDSN_CloudSQLTakesPrecedence はInstanceConnectionNameとHost/Portが両方設定されている場合にソケット接続が優先されることを検証します。
func TestDSN_CloudSQLTakesPrecedence(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		DBUser:                 "testuser",
		DBPassword:             "testpass",
		DBName:                 "testdb",
		DBHost:                 "localhost",
		DBPort:                 "3306",
		InstanceConnectionName: "project:region:instance",
	}

	dsn := cfg.DSN()

	expected := "testuser:testpass@unix(/cloudsql/project:region:instance)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestLoad_FromEnv は環境変数から設定が正しく読み込まれることを検証します。
func TestLoad_FromEnv(t *testing.T) {
	// Not parallel since we're modifying environment variables
	t.Setenv("PORT", "9090")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("INSTANCE_CONNECTION_NAME", "")
	t.Setenv("JWT_SECRET", "envsecret")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected Port '9090', got %q", cfg.Port)
	}
	if cfg.DBUser != "envuser" {
		t.Errorf("expected DBUser 'envuser', got %q", cfg.DBUser)
	}
	if cfg.DBPassword != "envpass" {
		t.Errorf("expected DBPassword 'envpass', got %q", cfg.DBPassword)
	}
	if cfg.DBName != "envdb" {
		t.Errorf("expected DBName 'envdb', got %q", cfg.DBName)
	}
	if cfg.DBHost != "envhost" {
		t.Errorf("expected DBHost 'envhost', got %q", cfg.DBHost)
	}
	if cfg.DBPort != "3307" {
		t.Errorf("expected DBPort '3307', got %q", cfg.DBPort)
	}
	if cfg.JWTSecret != "envsecret" {
		t.Errorf("expected JWTSecret 'envsecret', got %q", cfg.JWTSecret)
	}
	if !cfg.RunMigrations {
		t.Error("expected RunMigrations to be true")
	}
}

// TestLoad_Defaults は環境変数未設定時に開発用デフォルトが適用されることを検証します。
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("RUN_MIGRATIONS", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default Port '8080', got %q", cfg.Port)
	}
	if cfg.DBUser != "root" {
		t.Errorf("expected default DBUser 'root', got %q", cfg.DBUser)
	}
	if cfg.DBHost != "localhost" {
		t.Errorf("expected default DBHost 'localhost', got %q", cfg.DBHost)
	}
	if cfg.RunMigrations {
		t.Error("expected RunMigrations to default to false")
	}
}
