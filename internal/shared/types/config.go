package types

// ServerConf contains the TCP responder behaviour configuration.
type ServerConf struct {
	Port       int    `ini:"port"`
	Response   string `ini:"response"`
	Wiretap    bool   `ini:"wiretap"`
	BufferSize int    `ini:"buffer_size"`
}

// WebConf contains the web dashboard configuration.
type WebConf struct {
	WebPort int `ini:"web_port"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config is the unified configuration structure mapped from the ini file.
type Config struct {
	ServerConf `ini:"server"`
	WebConf    `ini:"web"`
	LogConf    `ini:"log"`
}
