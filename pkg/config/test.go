package config

func loadTestConfig(cfg *Config) {
	cfg.DatabaseDebug = false
	cfg.DatabaseFilePath = ":memory:"
	// Port 0 lets the OS pick a free port so parallel test runs don't collide.
	cfg.ServerPort = 0
}
