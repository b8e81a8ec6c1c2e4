//go:build tdjson

package native

/*
#include <stdlib.h>
*/
import "C"

//export goTdLogMessage
func goTdLogMessage(verbosity C.int, message *C.char) {
	dispatchLog(int(verbosity), C.GoString(message))
}
