// Package bioread renders text in bionic-reading style: the leading part
// of each word is emphasized and the trailing part de-emphasized, giving
// the eye fixation points to jump between.
//
// How much of a word is emphasized is controlled by a fixation point from
// 1 (most emphasis) to 5 (least). Each point maps to a table of word-length
// thresholds; the table's inverse gives the de-emphasized tail length for
// any word length in O(1).
//
// Two rendering modes are provided. Text and Word work on strings held in
// memory and give roughly forty common English words a lighter,
// first-letter-only emphasis. Stream processes an io.Reader byte by byte
// with constant memory per word, trading away the common-word list.
//
//	r, err := bioread.New(bioread.Options{
//		FixationPoint: 3,
//		Emphasis:      bioread.Markers{Open: "**", Close: "**"},
//	})
//	if err != nil {
//		return err
//	}
//	fmt.Println(r.Text("bionic reading in the terminal"))
package bioread
