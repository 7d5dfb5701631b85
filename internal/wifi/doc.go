// Package wifi defines the Wi-Fi network data model and the Wi-Fi QR payload
// format understood by mobile camera and QR scanner applications.
//
// The payload has the form:
//
//	WIFI:T:<type>;S:<ssid>;P:<password>;H:<true|empty>;;
//
// Field values are escaped independently: backslash, semicolon, colon and
// comma are each prefixed with a backslash.
package wifi
