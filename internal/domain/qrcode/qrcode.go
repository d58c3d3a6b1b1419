package qrcode

// Renderer converts a serialized QR-bill payload into a scannable
// image. Implementations must use error correction level M and a
// minimal margin, as the payment standard recommends for printed bills.
type Renderer interface {
	Render(payload string) ([]byte, error)
}
