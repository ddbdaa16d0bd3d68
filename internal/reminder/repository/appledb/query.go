package appledb

const tableExistsQuery = `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`

// Current stores keep reminders in ZREMCDREMINDER with lists in ZREMCDBASELIST.
const listDueQuery = `
SELECT r.Z_PK, r.ZTITLE, r.ZNOTES, r.ZDUEDATE, l.ZNAME
FROM ZREMCDREMINDER r
JOIN ZREMCDBASELIST l ON r.ZLIST = l.Z_PK
WHERE r.ZCOMPLETED = 0
  AND r.ZDUEDATE IS NOT NULL
  AND r.ZDUEDATE >= ? AND r.ZDUEDATE < ?
  AND (? = '' OR l.ZNAME = ?)
ORDER BY r.ZDUEDATE`

// Older stores have a flat ZREMINDER table without list names.
const legacyListDueQuery = `
SELECT Z_PK, ZTITLE, ZNOTES, ZDUEDATE, ''
FROM ZREMINDER
WHERE ZCOMPLETED = 0
  AND ZDUEDATE IS NOT NULL
  AND ZDUEDATE >= ? AND ZDUEDATE < ?
ORDER BY ZDUEDATE`
