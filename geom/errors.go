package geom

import "fmt"

const packageName = "geom: "

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
