package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/limaJavier/semplanner/pkg/catalog"
	"github.com/samber/lo"
)

const createCourses = `CREATE TABLE IF NOT EXISTS courses (
	subject TEXT NOT NULL,
	code INTEGER NOT NULL,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	offered TEXT NOT NULL,
	age_reqs TEXT NOT NULL,
	complete BOOLEAN NOT NULL,
	prereq_groups INTEGER NOT NULL DEFAULT 0,
	coreq_groups INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (subject, code)
)`
const addGroupCounts = `ALTER TABLE courses ADD COLUMN IF NOT EXISTS prereq_groups INTEGER NOT NULL DEFAULT 0, ADD COLUMN IF NOT EXISTS coreq_groups INTEGER NOT NULL DEFAULT 0`
const createRequisites = `CREATE TABLE IF NOT EXISTS requisites (
	subject TEXT NOT NULL,
	code INTEGER NOT NULL,
	kind TEXT NOT NULL,
	group_index INTEGER NOT NULL,
	member_index INTEGER NOT NULL,
	requisite_subject TEXT NOT NULL,
	requisite_code INTEGER NOT NULL,
	PRIMARY KEY (subject, code, kind, group_index, member_index),
	FOREIGN KEY (subject, code) REFERENCES courses (subject, code) ON DELETE CASCADE
)`

const listCourses = `SELECT subject, code, name, description, offered, age_reqs, complete, prereq_groups, coreq_groups FROM courses ORDER BY subject, code`
const listRequisites = `SELECT subject, code, kind, group_index, requisite_subject, requisite_code FROM requisites ORDER BY subject, code, kind, group_index, member_index`

const insertCourse = `INSERT INTO courses (subject, code, name, description, offered, age_reqs, complete, prereq_groups, coreq_groups) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (subject, code) DO UPDATE SET name=EXCLUDED.name, description=EXCLUDED.description, offered=EXCLUDED.offered, age_reqs=EXCLUDED.age_reqs, complete=EXCLUDED.complete, prereq_groups=EXCLUDED.prereq_groups, coreq_groups=EXCLUDED.coreq_groups`
const deleteRequisites = `DELETE FROM requisites WHERE subject = $1 AND code = $2`
const insertRequisite = `INSERT INTO requisites (subject, code, kind, group_index, member_index, requisite_subject, requisite_code) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT DO NOTHING`

type requisiteKind string

const (
	prereqKind    requisiteKind = "prereq"
	prereqOptKind requisiteKind = "prereq_opt"
	coreqKind     requisiteKind = "coreq"
	coreqOptKind  requisiteKind = "coreq_opt"
)

// storedCourse is a course row. Group counts keep groups without members, which have no requisite rows
type storedCourse struct {
	catalog.RawCourse
	PrereqGroups int
	CoreqGroups  int
}

// requisiteRow is one member of one requisite group of a course
type requisiteRow struct {
	Course     catalog.CourseID
	Kind       requisiteKind
	GroupIndex int
	Position   int
	Requisite  catalog.CourseID
}

func insertCallback(ct pgconn.CommandTag) error {
	return nil
}

func (d *Database) EnsureSchema(ctx context.Context) error {
	for _, sql := range []string{createCourses, addGroupCounts, createRequisites} {
		if _, err := d.Pool.Exec(ctx, sql); err != nil {
			return fmt.Errorf("cannot create schema: %w", err)
		}
	}
	return nil
}

// InsertCourses upserts the courses, replacing the requisites stored for each of them
func (d *Database) InsertCourses(ctx context.Context, courses []catalog.RawCourse) error {
	if len(courses) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, course := range courses {
		id := course.Coid
		queuedQueries = append(queuedQueries,
			batch.Queue(insertCourse, id.Subject, int(id.Code), course.Name, course.Description, course.Offered, course.AgeReqs, course.Complete, len(course.Prereqs), len(course.Coreqs)),
			batch.Queue(deleteRequisites, id.Subject, int(id.Code)),
		)
		for _, row := range requisiteRows(course) {
			queuedQueries = append(queuedQueries, batch.Queue(insertRequisite,
				row.Course.Subject, int(row.Course.Code), string(row.Kind), row.GroupIndex, row.Position, row.Requisite.Subject, int(row.Requisite.Code),
			))
		}
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := d.Pool.SendBatch(ctx, &batch).Close(); err != nil {
		return fmt.Errorf("cannot insert courses: %w", err)
	}
	return nil
}

// ListCourses returns the stored courses ordered by id, with their requisite groups rebuilt
func (d *Database) ListCourses(ctx context.Context) ([]catalog.RawCourse, error) {
	rows, err := d.Pool.Query(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []storedCourse
	for rows.Next() {
		var course storedCourse
		var code int
		if err := rows.Scan(&course.Coid.Subject, &code, &course.Name, &course.Description, &course.Offered, &course.AgeReqs, &course.Complete, &course.PrereqGroups, &course.CoreqGroups); err != nil {
			return nil, err
		}
		course.Coid.Code = uint16(code)
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	requisites, err := d.listRequisites(ctx)
	if err != nil {
		return nil, err
	}
	return assembleCourses(courses, requisites), nil
}

func (d *Database) listRequisites(ctx context.Context) ([]requisiteRow, error) {
	rows, err := d.Pool.Query(ctx, listRequisites)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requisites []requisiteRow
	for rows.Next() {
		var row requisiteRow
		var kind string
		var code, requisiteCode int
		if err := rows.Scan(&row.Course.Subject, &code, &kind, &row.GroupIndex, &row.Requisite.Subject, &requisiteCode); err != nil {
			return nil, err
		}
		row.Course.Code = uint16(code)
		row.Requisite.Code = uint16(requisiteCode)
		row.Kind = requisiteKind(kind)
		requisites = append(requisites, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requisites, nil
}

func requisiteRows(course catalog.RawCourse) []requisiteRow {
	rows := make([]requisiteRow, 0)
	appendGroup := func(kind requisiteKind, groupIndex int, group []catalog.CourseID) {
		for position, requisite := range group {
			rows = append(rows, requisiteRow{Course: course.Coid, Kind: kind, GroupIndex: groupIndex, Position: position, Requisite: requisite})
		}
	}

	for i, group := range course.Prereqs {
		appendGroup(prereqKind, i, group)
	}
	appendGroup(prereqOptKind, 0, course.PrereqsOpt)
	for i, group := range course.Coreqs {
		appendGroup(coreqKind, i, group)
	}
	appendGroup(coreqOptKind, 0, course.CoreqsOpt)
	return rows
}

// assembleCourses attaches the requisite rows, ordered by group and position, to their courses
func assembleCourses(courses []storedCourse, rows []requisiteRow) []catalog.RawCourse {
	byCourse := lo.GroupBy(rows, func(row requisiteRow) catalog.CourseID { return row.Course })

	return lo.Map(courses, func(stored storedCourse, _ int) catalog.RawCourse {
		course := stored.RawCourse
		course.Prereqs = emptyGroups(stored.PrereqGroups)
		course.PrereqsOpt = []catalog.CourseID{}
		course.Coreqs = emptyGroups(stored.CoreqGroups)
		course.CoreqsOpt = []catalog.CourseID{}
		course.PostOptions = []catalog.CourseID{}

		for _, row := range byCourse[course.Coid] {
			switch row.Kind {
			case prereqKind:
				course.Prereqs = appendToGroup(course.Prereqs, row)
			case coreqKind:
				course.Coreqs = appendToGroup(course.Coreqs, row)
			case prereqOptKind:
				course.PrereqsOpt = append(course.PrereqsOpt, row.Requisite)
			case coreqOptKind:
				course.CoreqsOpt = append(course.CoreqsOpt, row.Requisite)
			}
		}
		return course
	})
}

func emptyGroups(count int) [][]catalog.CourseID {
	groups := make([][]catalog.CourseID, max(count, 0))
	for i := range groups {
		groups[i] = []catalog.CourseID{}
	}
	return groups
}

func appendToGroup(groups [][]catalog.CourseID, row requisiteRow) [][]catalog.CourseID {
	for len(groups) <= row.GroupIndex {
		groups = append(groups, []catalog.CourseID{})
	}
	groups[row.GroupIndex] = append(groups[row.GroupIndex], row.Requisite)
	return groups
}
