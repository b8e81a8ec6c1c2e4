package tdapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

//----------------------------------------------------------------------
// Proxies & Network
//----------------------------------------------------------------------

// Describes the current state of the connection to Telegram servers
//
// @category Network
type ConnectionState interface {
	Object
	isConnectionState()
}

// Currently waiting for the network to become available. Use setNetworkType to change the
// available network type
//
// @class ConnectionState
// @category Network
type ConnectionStateWaitingForNetwork struct{}

// Currently establishing a connection with a proxy server
//
// @class ConnectionState
// @category Network
type ConnectionStateConnectingToProxy struct{}

// Currently establishing a connection to the Telegram servers
//
// @class ConnectionState
// @category Network
type ConnectionStateConnecting struct{}

// Downloading data received while the application was offline
//
// @class ConnectionState
// @category Network
type ConnectionStateUpdating struct{}

// There is a working connection to the Telegram servers
//
// @class ConnectionState
// @category Network
type ConnectionStateReady struct{}

// Represents the type of a network
//
// @category Network
type NetworkType interface {
	Object
	isNetworkType()
}

// The network is not available
//
// @class NetworkType
// @category Network
type NetworkTypeNone struct{}

// A mobile network
//
// @class NetworkType
// @category Network
type NetworkTypeMobile struct{}

// A mobile roaming network
//
// @class NetworkType
// @category Network
type NetworkTypeMobileRoaming struct{}

// A Wi-Fi network
//
// @class NetworkType
// @category Network
type NetworkTypeWiFi struct{}

// A different network type (e.g., Ethernet network)
//
// @class NetworkType
// @category Network
type NetworkTypeOther struct{}

// Sets the current network type. Can be called before authorization. Calling this method
// forces all network connections to reopen, mitigating the delay in switching between
// different networks, so it must be called whenever the network is changed, even if the
// network type remains the same. Network type is used to check whether the library can use
// the network at all and also for collecting detailed network data usage statistics
//
// @category Network
// @returns Ok
type SetNetworkType struct {
	// The new network type; pass null to set network type to networkTypeOther
	// @optional
	Type NetworkType `json:"type,omitempty"`
}

func (p SetNetworkType) Validate() error {
	return nil
}

// Describes the type of a proxy server
//
// @category Network
type ProxyType interface {
	Object
	isProxyType()
}

// A SOCKS5 proxy server
//
// @class ProxyType
// @category Network
type ProxyTypeSocks5 struct {
	// Username for logging in; may be empty
	Username string `json:"username"`

	// Password for logging in; may be empty
	Password string `json:"password"`
}

// A HTTP transparent proxy server
//
// @class ProxyType
// @category Network
type ProxyTypeHttp struct {
	// Username for logging in; may be empty
	Username string `json:"username"`

	// Password for logging in; may be empty
	Password string `json:"password"`

	// Pass true if the proxy supports only HTTP requests and doesn't support transparent TCP connections via HTTP CONNECT method
	HttpOnly bool `json:"http_only"`
}

// An MTProto proxy server
//
// @class ProxyType
// @category Network
type ProxyTypeMtproto struct {
	// The proxy's secret in hexadecimal encoding
	Secret string `json:"secret"`
}

// Contains information about a proxy server
//
// @category Network
type Proxy struct {
	// Unique identifier of the proxy
	ID int32 `json:"id"`

	// Proxy server domain or IP address
	Server string `json:"server"`

	// Proxy server port
	Port int32 `json:"port"`

	// Point in time (Unix timestamp) when the proxy was last used; 0 if never
	LastUsedDate int32 `json:"last_used_date"`

	// True, if the proxy is enabled now
	IsEnabled bool `json:"is_enabled"`

	// Type of the proxy
	Type ProxyType `json:"type"`
}

// Represents a list of proxy servers
//
// @category Network
type Proxies struct {
	// List of proxy servers
	Proxies []*Proxy `json:"proxies"`
}

// Adds a proxy server for network requests. Can be called before authorization
//
// @category Network
// @returns Proxy
type AddProxy struct {
	// Proxy server domain or IP address
	Server string `json:"server"`

	// Proxy server port
	Port int32 `json:"port"`

	// Pass true to immediately enable the proxy
	Enable bool `json:"enable"`

	// Proxy type
	Type ProxyType `json:"type"`
}

func (p AddProxy) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Server, validation.Required),
		validation.Field(&p.Port, validation.Required),
		validation.Field(&p.Type, validation.Required),
	)
}

// Edits an existing proxy server for network requests. Can be called before authorization
//
// @category Network
// @returns Proxy
type EditProxy struct {
	// Proxy identifier
	ProxyID int32 `json:"proxy_id"`

	// Proxy server domain or IP address
	Server string `json:"server"`

	// Proxy server port
	Port int32 `json:"port"`

	// Pass true to immediately enable the proxy
	Enable bool `json:"enable"`

	// Proxy type
	Type ProxyType `json:"type"`
}

func (p EditProxy) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ProxyID, validation.Required),
		validation.Field(&p.Server, validation.Required),
		validation.Field(&p.Port, validation.Required),
		validation.Field(&p.Type, validation.Required),
	)
}

// Enables a proxy. Only one proxy can be enabled at a time. Can be called before
// authorization
//
// @category Network
// @returns Ok
type EnableProxy struct {
	// Proxy identifier
	ProxyID int32 `json:"proxy_id"`
}

func (p EnableProxy) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ProxyID, validation.Required),
	)
}

// Disables the currently enabled proxy. Can be called before authorization
//
// @category Network
// @returns Ok
type DisableProxy struct{}

func (p DisableProxy) Validate() error {
	return nil
}

// Removes a proxy server. Can be called before authorization
//
// @category Network
// @returns Ok
type RemoveProxy struct {
	// Proxy identifier
	ProxyID int32 `json:"proxy_id"`
}

func (p RemoveProxy) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ProxyID, validation.Required),
	)
}

// Returns list of proxies that are currently set up. Can be called before authorization
//
// @category Network
// @returns Proxies
type GetProxies struct{}

func (p GetProxies) Validate() error {
	return nil
}

// Computes time needed to receive a response from a Telegram server through a proxy. Can
// be called before authorization
//
// @category Network
// @returns Seconds
type PingProxy struct {
	// Proxy identifier. Use 0 to ping a Telegram server without a proxy
	ProxyID int32 `json:"proxy_id"`
}

func (p PingProxy) Validate() error {
	return nil
}
