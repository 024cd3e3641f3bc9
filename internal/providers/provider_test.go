package providers

import "testing"

func TestDataProviderInterfaceImplemented(t *testing.T) {
	var _ DataProvider = (*stubProvider)(nil)
	var _ DataProvider = (*instrumentedProvider)(nil)
}
