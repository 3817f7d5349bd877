// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import "strings"

// Scheduler is the parsed queue/scheduler attribute: the I/O schedulers the
// kernel offers for the device in file order, and the index of the active
// one.
type Scheduler struct {
	Names  []string
	Active int
}

// ActiveName returns the name of the active scheduler.
//
// When the attribute had no bracket-marked entry, Active stays 0 and the
// first scheduler is reported even though none was marked active; the kernel
// format leaves this ambiguous. An empty scheduler list returns "".
func (s Scheduler) ActiveName() string {
	if len(s.Names) == 0 {
		return ""
	}

	return s.Names[s.Active]
}

// Scheduler parses the queue/scheduler attribute, a single line of
// whitespace-separated scheduler names with the active one wrapped in
// brackets, e.g. "noop deadline [cfq]".
func (d *Device) Scheduler() (Scheduler, error) {
	text, err := d.dir.ReadFile("queue/scheduler")
	if err != nil {
		return Scheduler{}, err
	}

	return parseScheduler(text), nil
}

func parseScheduler(text string) Scheduler {
	var sched Scheduler

	for _, name := range strings.Fields(text) {
		if strings.HasPrefix(name, "[") {
			sched.Active = len(sched.Names)

			// strip one leading and one trailing character
			if len(name) >= 2 {
				name = name[1 : len(name)-1]
			} else {
				name = ""
			}
		}

		sched.Names = append(sched.Names, name)
	}

	return sched
}
