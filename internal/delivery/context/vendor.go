package context

import "github.com/labstack/echo/v4"

// SetVendorID stores the authenticated vendor ID in echo.Context.
func SetVendorID(c echo.Context, vendorID int64) {
	c.Set(string(KeyVendorID), vendorID)
}

// GetVendorID returns the authenticated vendor ID, or false when the request
// did not pass the bearer middleware.
func GetVendorID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(KeyVendorID)).(int64)
	if !ok || id <= 0 {
		return 0, false
	}

	return id, true
}
