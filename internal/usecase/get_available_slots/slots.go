package get_available_slots

import "github.com/m04kA/SPA-AdminService/pkg/types"

// containsSlot проверяет наличие времени в списке слотов
func containsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
