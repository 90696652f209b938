package formats_test

import (
	"fmt"

	"slogforge/formats"
	"slogforge/models"
)

func ExampleGenerate() {
	facility, severity := 4, 2
	out := formats.Generate("5424", models.MessageComponents{
		RFCVersion: "5424",
		Facility:   &facility,
		Severity:   &severity,
		Timestamp:  "2003-10-11T22:14:15.003Z",
		Hostname:   "mymachine",
		AppName:    "su",
		MsgID:      "ID47",
		Message:    "'su root' failed for lonvick on /dev/pts/8",
	})

	fmt.Println(out)
	// Output:
	// <34>1 2003-10-11T22:14:15.003Z mymachine su - ID47 - 'su root' failed for lonvick on /dev/pts/8
}

func ExampleParse() {
	parsed, err := formats.Parse("3164", "<34>Oct 11 22:14:15 mymachine su: 'su root' failed for lonvick on /dev/pts/8")
	if err != nil {
		panic(err)
	}

	fmt.Println(parsed.Priority, parsed.Facility, parsed.Severity)
	fmt.Println(parsed.Hostname, parsed.Tag)
	fmt.Println(parsed.Message)
	// Output:
	// 34 4 2
	// mymachine su
	// 'su root' failed for lonvick on /dev/pts/8
}
