package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Views and responses share field names, so a failed copy is a programming error.
func mustCopy(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic(fmt.Sprintf("response mapping: %v", err))
	}
}
